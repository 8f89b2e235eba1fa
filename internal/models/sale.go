package models

import "time"

// Sale: Tamamlanmış satış kaydı. ID snowflake üretecinden gelir (eşzamanlı
// satışlarda da benzersiz). Oluşturulduktan sonra sadece PrepTimeInSeconds
// alanı, mutfak siparişi tamamlanınca bir kez yazılır.
type Sale struct {
	ID                int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Timestamp         time.Time `gorm:"index;not null" json:"timestamp"`
	Subtotal          float64   `gorm:"not null" json:"subtotal"`
	Discount          float64   `gorm:"not null" json:"discount"`
	Total             float64   `gorm:"not null" json:"total"` // total = subtotal - discount
	PrepTimeInSeconds *float64  `json:"prep_time_in_seconds,omitempty"`
	CustomerID        *uint     `gorm:"index" json:"customer_id,omitempty"` // sadece müşteri siparişlerinde
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:SaleID" json:"items"`
}

// OrderItem: Satış satırı, menü ürününün satış anındaki kopyası.
// Sıra yalnızca görüntüleme içindir, stok düşümünü etkilemez.
type OrderItem struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	SaleID     int64        `gorm:"index;not null" json:"sale_id"`
	MenuItemID uint         `gorm:"index;not null" json:"menu_item_id"`
	Name       string       `gorm:"size:100;not null" json:"name"`
	Category   MenuCategory `gorm:"size:20;not null" json:"category"`
	UnitPrice  float64      `gorm:"not null" json:"unit_price"`
	Quantity   int          `gorm:"not null" json:"quantity"` // > 0
}
