package models

import "time"

// WasteRecord: Satış dışı stok düşümü (zayiat) kaydı. Append-only, asla
// güncellenmez. ID UUID'dir.
type WasteRecord struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Timestamp       time.Time `gorm:"index;not null" json:"timestamp"`
	InventoryItemID uint      `gorm:"index;not null" json:"inventory_item_id"`
	Quantity        float64   `gorm:"not null" json:"quantity"` // > 0
	Reason          string    `gorm:"size:500;not null" json:"reason"` // zorunlu: zayiatın sebebi
	CreatedAt       time.Time `json:"created_at"`
}
