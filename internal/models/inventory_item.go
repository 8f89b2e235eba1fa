package models

import "time"

type InventoryCategory string

const (
	InventoryProduce   InventoryCategory = "Produce"
	InventoryDairy     InventoryCategory = "Dairy"
	InventoryBakery    InventoryCategory = "Bakery"
	InventoryDryGoods  InventoryCategory = "Dry Goods"
	InventoryBeverages InventoryCategory = "Beverages"
)

type InventoryItem struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Name         string            `gorm:"size:100;not null;unique" json:"name"`
	Category     InventoryCategory `gorm:"size:20;not null" json:"category"`
	Stock        float64           `gorm:"not null;default:0" json:"stock"` // negatif olamaz (floor-at-zero)
	Unit         string            `gorm:"size:10;not null" json:"unit"`    // kg, g, liters, ml, units
	ReorderLevel float64           `gorm:"not null;default:0" json:"reorder_level"` // uyarı eşiği, motor tarafından zorlanmaz
	Supplier     string            `gorm:"size:100" json:"supplier"`
	Cost         float64           `gorm:"not null;default:0" json:"cost"` // birim maliyet
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	PurchaseHistory []PurchaseRecord `gorm:"foreignKey:InventoryItemID" json:"purchase_history"`
}

// PurchaseRecord: Tedarik kaydı, sadece eklenir (append-only)
type PurchaseRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	InventoryItemID uint      `gorm:"index;not null" json:"inventory_item_id"`
	Date            time.Time `gorm:"not null" json:"date"`
	Quantity        float64   `gorm:"not null" json:"quantity"`
	CostPerUnit     float64   `gorm:"not null" json:"cost_per_unit"`
	CreatedAt       time.Time `json:"created_at"`
}
