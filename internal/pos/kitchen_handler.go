package pos

import (
	"strconv"
	"time"

	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type KitchenOrderResponse struct {
	ID         int64              `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Items      []models.OrderItem `json:"items"`
	CustomerID *uint              `json:"customer_id,omitempty"`
}

// GET /api/kitchen/orders
func ListKitchenOrdersHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders := store.KitchenOrders()
		resp := make([]KitchenOrderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, KitchenOrderResponse{
				ID:         o.ID,
				Timestamp:  o.Timestamp,
				Items:      o.Items,
				CustomerID: o.CustomerID,
			})
		}
		return c.JSON(resp)
	}
}

// POST /api/kitchen/orders/:id/complete
// Tamamlama idempotenttir: bilinmeyen ya da zaten tamamlanmış sipariş
// için de 200 döner, hazırlık süresi ikinci kez yazılmaz.
func CompleteOrderHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş ID")
		}
		store.CompleteOrder(id)
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
