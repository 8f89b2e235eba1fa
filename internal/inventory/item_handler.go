package inventory

import (
	"strconv"

	"cafemaster-backend/internal/database"
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type InventoryItemRequest struct {
	Name         string                   `json:"name"`
	Category     models.InventoryCategory `json:"category"`
	Stock        float64                  `json:"stock"`
	Unit         string                   `json:"unit"`
	ReorderLevel float64                  `json:"reorder_level"`
	Supplier     string                   `json:"supplier"`
	Cost         float64                  `json:"cost"`
}

type RestockRequest struct {
	Quantity    float64 `json:"quantity"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

func validInventoryCategory(cat models.InventoryCategory) bool {
	switch cat {
	case models.InventoryProduce, models.InventoryDairy, models.InventoryBakery,
		models.InventoryDryGoods, models.InventoryBeverages:
		return true
	}
	return false
}

// POST /api/inventory-items
func CreateInventoryItemHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body InventoryItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name ve unit zorunludur")
		}
		if !validInventoryCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz envanter kategorisi")
		}

		item, err := store.PutInventoryItem(models.InventoryItem{
			Name:         body.Name,
			Category:     body.Category,
			Stock:        body.Stock,
			Unit:         body.Unit,
			ReorderLevel: body.ReorderLevel,
			Supplier:     body.Supplier,
			Cost:         body.Cost,
		})
		if err != nil {
			if engine.IsInvalidQuantity(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kalemi oluşturulamadı")
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kalemi kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/inventory-items/:id
// Stok doğrudan düzenlenebilir (sayım düzeltmesi); tedarik için restock
// ucu kullanılmalı.
func UpdateInventoryItemHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		existing, err := store.InventoryItem(id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Envanter kalemi bulunamadı")
		}

		var body InventoryItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name ve unit zorunludur")
		}
		if !validInventoryCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz envanter kategorisi")
		}

		existing.Name = body.Name
		existing.Category = body.Category
		existing.Stock = body.Stock
		existing.Unit = body.Unit
		existing.ReorderLevel = body.ReorderLevel
		existing.Supplier = body.Supplier
		existing.Cost = body.Cost

		item, err := store.PutInventoryItem(existing)
		if err != nil {
			if engine.IsInvalidQuantity(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kalemi güncellenemedi")
		}

		if err := database.DB.Omit("PurchaseHistory").Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kalemi kaydedilemedi")
		}

		return c.JSON(item)
	}
}

// DELETE /api/inventory-items/:id
func DeleteInventoryItemHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		if err := store.DeleteInventoryItem(id); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Envanter kalemi bulunamadı")
		}

		database.DB.Where("inventory_item_id = ?", id).Delete(&models.PurchaseRecord{})
		if err := database.DB.Delete(&models.InventoryItem{}, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kalemi silinemedi")
		}

		return c.JSON(fiber.Map{"status": "deleted"})
	}
}

// GET /api/inventory-items
func ListInventoryItemsHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.InventoryItems())
	}
}

// GET /api/inventory-items/:id
func GetInventoryItemHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		item, err := store.InventoryItem(id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Envanter kalemi bulunamadı")
		}
		return c.JSON(item)
	}
}

// POST /api/inventory-items/:id/restock
// Tedarik kaydı append-only'dir; kalıcı kopya olay kaydedici üzerinden
// güncellenir, burada ikinci kez yazılmaz.
func RestockHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body RestockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		record, err := store.Restock(id, body.Quantity, body.CostPerUnit)
		if err != nil {
			switch {
			case engine.IsNotFound(err):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case engine.IsInvalidQuantity(err):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Tedarik kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(record)
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	v, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Geçersiz ID")
	}
	return uint(v), nil
}
