package models

import "time"

type MenuCategory string

const (
	CategoryFood     MenuCategory = "Food"
	CategoryBeverage MenuCategory = "Beverage"
	CategoryDessert  MenuCategory = "Dessert"
)

// FulfillmentKind: Ürünün nasıl hazırlandığını belirler.
// "prepared" -> reçeteli ürün, satışta hammadde stoğu düşülür.
// "stocked"  -> hazır/satın alınmış ürün, satışta kendi stok sayacı düşülür.
// Reçete eklenince/silinince katalog tarafında güncellenir, satış anında
// tekrar hesaplanmaz.
type FulfillmentKind string

const (
	FulfillmentPrepared FulfillmentKind = "prepared"
	FulfillmentStocked  FulfillmentKind = "stocked"
)

type MenuItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null;unique" json:"name"`
	Category    MenuCategory    `gorm:"size:20;not null" json:"category"`
	Price       float64         `gorm:"not null" json:"price"`
	ImageURL    string          `gorm:"size:255" json:"image_url"`
	Stock       int             `gorm:"not null;default:0" json:"stock"` // sadece reçetesiz (stocked) ürünlerde kullanılır
	Fulfillment FulfillmentKind `gorm:"size:10;not null;default:stocked" json:"fulfillment"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
