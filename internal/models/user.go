package models

import "time"

type UserRole string

const (
	RoleManager    UserRole = "manager"
	RoleStaff      UserRole = "staff"
	RoleAccountant UserRole = "accountant"
	RoleCustomer   UserRole = "customer"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	CustomerID   *uint    // customer rolü için LoyaltyCustomer bağlantısı
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
