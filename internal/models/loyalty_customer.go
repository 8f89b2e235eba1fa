package models

import "time"

// LoyaltyCustomer: Puan bakiyesi sadece sadakat defteri (engine) üzerinden
// güncellenir. Bakiye alt sınırı motor tarafından zorlanmaz; harcama limiti
// checkout tarafında doğrulanır.
type LoyaltyCustomer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	JoinDate  time.Time `gorm:"not null" json:"join_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
