package inventory

import (
	"cafemaster-backend/internal/engine"

	"github.com/gofiber/fiber/v2"
)

type CreateWasteRecordRequest struct {
	InventoryItemID uint    `json:"inventory_item_id"` // zorunlu
	Quantity        float64 `json:"quantity"`          // zorunlu, 0'dan büyük
	Reason          string  `json:"reason"`            // zorunlu: zayiatın sebebi
}

// POST /api/waste-records
// Zayiat kaydı her durumda eklenir; bilinmeyen kaleme yazılan zayiat da
// kayda geçer, sadece stok düşümü atlanır.
func CreateWasteRecordHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateWasteRecordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.InventoryItemID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "inventory_item_id zorunludur")
		}
		if body.Reason == "" || len(body.Reason) < 3 {
			return fiber.NewError(fiber.StatusBadRequest, "reason zorunludur ve en az 3 karakter olmalıdır")
		}

		record, err := store.RecordWaste(body.InventoryItemID, body.Quantity, body.Reason)
		if err != nil {
			if engine.IsInvalidQuantity(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Zayiat kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(record)
	}
}

// GET /api/waste-records
func ListWasteRecordsHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.WasteRecords())
	}
}
