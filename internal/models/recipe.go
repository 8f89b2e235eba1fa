package models

import "time"

// Recipe: Menü ürünü başına en fazla bir aktif reçete (MenuItemID unique).
// PrepTime/CleanTime sadece süre tahmini için temel oluşturur, motor zorlamaz.
// UtilitiesCost/PackagingCost raporlama içindir, stoktan düşülmez.
type Recipe struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MenuItemID    uint      `gorm:"uniqueIndex;not null" json:"menu_item_id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	InMenu        bool      `gorm:"not null;default:true" json:"in_menu"`
	PrepTime      int       `gorm:"not null;default:0" json:"prep_time"`  // dakika
	CleanTime     int       `gorm:"not null;default:0" json:"clean_time"` // dakika
	UtilitiesCost float64   `gorm:"not null;default:0" json:"utilities_cost"`
	PackagingCost float64   `gorm:"not null;default:0" json:"packaging_cost"`
	Description   string    `gorm:"size:500" json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

// RecipeIngredient: Satılan birim başına hammadde tüketimi.
// InventoryItemID katalogda mevcut olmalı, Quantity >= 0.
type RecipeIngredient struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	RecipeID        uint    `gorm:"index;not null" json:"recipe_id"`
	InventoryItemID uint    `gorm:"index;not null" json:"inventory_item_id"`
	Quantity        float64 `gorm:"not null" json:"quantity"` // birim satış başına miktar
}
