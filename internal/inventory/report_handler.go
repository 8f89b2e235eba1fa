package inventory

import (
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LowStockItem struct {
	ID           uint                     `json:"id"`
	Name         string                   `json:"name"`
	Category     models.InventoryCategory `json:"category"`
	Stock        float64                  `json:"stock"`
	Unit         string                   `json:"unit"`
	ReorderLevel float64                  `json:"reorder_level"`
	Supplier     string                   `json:"supplier"`
}

// LowStock yeniden sipariş eşiğinin altındaki kalemleri döndürür.
// Cron taraması ve rapor ucu aynı listeyi kullanır.
func LowStock(store *engine.Store) []LowStockItem {
	var out []LowStockItem
	for _, item := range store.InventoryItems() {
		if item.ReorderLevel > 0 && item.Stock <= item.ReorderLevel {
			out = append(out, LowStockItem{
				ID:           item.ID,
				Name:         item.Name,
				Category:     item.Category,
				Stock:        item.Stock,
				Unit:         item.Unit,
				ReorderLevel: item.ReorderLevel,
				Supplier:     item.Supplier,
			})
		}
	}
	return out
}

// GET /api/inventory-items/low-stock
func LowStockReportHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items := LowStock(store)
		if items == nil {
			items = []LowStockItem{}
		}
		return c.JSON(items)
	}
}
