package loyalty

import (
	"strconv"

	"cafemaster-backend/internal/engine"

	"github.com/gofiber/fiber/v2"
)

type OrderStatusResponse struct {
	SaleID           int64    `json:"sale_id"`
	Status           string   `json:"status"` // preparing | ready | picked_up
	EstimatedSeconds *float64 `json:"estimated_seconds,omitempty"`
}

// GET /api/pickup/pending
// Oturumdaki müşterinin teslim onayı bekleyen siparişleri.
func PendingPickupsHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, ok := customerFromClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Müşteri hesabı gerekli")
		}
		return c.JSON(fiber.Map{"order_ids": store.Pending(customerID)})
	}
}

// POST /api/pickup/:id/acknowledge
// Sahiplik burada doğrulanır: müşteri sadece kendi siparişini onaylayabilir.
// Onay idempotent değildir, ikinci onay 404 döner.
func AcknowledgePickupHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, ok := customerFromClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Müşteri hesabı gerekli")
		}

		orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş ID")
		}

		owner, found := store.PickupOwner(orderID)
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "Bekleyen teslim bulunamadı")
		}
		if owner != customerID {
			return fiber.NewError(fiber.StatusForbidden, "Bu sipariş size ait değil")
		}

		if !store.Acknowledge(orderID) {
			return fiber.NewError(fiber.StatusNotFound, "Bekleyen teslim bulunamadı")
		}
		return c.JSON(fiber.Map{"status": "acknowledged"})
	}
}

// GET /api/orders/:id/status
// Müşteri sipariş takibi: hazırlanıyorsa geçmiş satışlardan türetilmiş
// süre tahmini de döner.
func OrderStatusHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, ok := customerFromClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Müşteri hesabı gerekli")
		}

		saleID, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş ID")
		}

		sale, err := store.Sale(saleID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}
		if sale.CustomerID == nil || *sale.CustomerID != customerID {
			return fiber.NewError(fiber.StatusForbidden, "Bu sipariş size ait değil")
		}

		resp := OrderStatusResponse{SaleID: sale.ID}
		if sale.PrepTimeInSeconds == nil {
			resp.Status = "preparing"
			ids := make([]uint, 0, len(sale.Items))
			for _, it := range sale.Items {
				ids = append(ids, it.MenuItemID)
			}
			est := store.EstimatePrepTime(ids)
			resp.EstimatedSeconds = &est
		} else if _, pending := store.PickupOwner(sale.ID); pending {
			resp.Status = "ready"
		} else {
			resp.Status = "picked_up"
		}

		return c.JSON(resp)
	}
}

// GET /api/estimate?menu_item_id=1&menu_item_id=2
// Sipariş vermeden önce süre tahmini.
func EstimateHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ids []uint
		for _, raw := range c.Context().QueryArgs().PeekMulti("menu_item_id") {
			v, err := strconv.ParseUint(string(raw), 10, 32)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz menu_item_id")
			}
			ids = append(ids, uint(v))
		}
		if len(ids) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir menu_item_id gerekli")
		}
		return c.JSON(fiber.Map{"estimated_seconds": store.EstimatePrepTime(ids)})
	}
}
