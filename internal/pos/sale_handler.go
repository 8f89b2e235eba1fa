package pos

import (
	"math"
	"strconv"

	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SaleLine struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

type CreateSaleRequest struct {
	Items      []SaleLine `json:"items"`
	Discount   float64    `json:"discount"`
	CustomerID *uint      `json:"customer_id"` // opsiyonel: kasada sadakat kartı okutulduysa
}

type CreateSaleResponse struct {
	Sale         models.Sale `json:"sale"`
	PointsEarned int         `json:"points_earned,omitempty"`
}

// BuildOrder sipariş satırlarını kataloğun o anki fiyatlarıyla kopyalar.
// Satış kaydı katalog sonradan değişse de aynı kalır.
func BuildOrder(store *engine.Store, lines []SaleLine) ([]models.OrderItem, float64, error) {
	if len(lines) == 0 {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Sipariş en az bir satır içermeli")
	}

	order := make([]models.OrderItem, 0, len(lines))
	subtotal := 0.0
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "quantity 0'dan büyük olmalıdır")
		}
		item, err := store.MenuItem(line.MenuItemID)
		if err != nil {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Menü ürünü bulunamadı: "+strconv.FormatUint(uint64(line.MenuItemID), 10))
		}
		order = append(order, models.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Category:   item.Category,
			UnitPrice:  item.Price,
			Quantity:   line.Quantity,
		})
		subtotal += item.Price * float64(line.Quantity)
	}
	return order, round2(subtotal), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// POST /api/sales
func CreateSaleHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		order, subtotal, err := BuildOrder(store, body.Items)
		if err != nil {
			return err
		}

		if body.Discount < 0 || body.Discount > subtotal {
			return fiber.NewError(fiber.StatusBadRequest, "İndirim 0 ile ara toplam arasında olmalı")
		}
		total := round2(subtotal - body.Discount)

		if body.CustomerID != nil {
			if _, err := store.Customer(*body.CustomerID); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Müşteri bulunamadı")
			}
		}

		sale, err := store.FinalizeSale(order, subtotal, body.Discount, total, body.CustomerID)
		if err != nil {
			if engine.IsInvalidQuantity(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kaydedilemedi")
		}

		resp := CreateSaleResponse{Sale: sale}
		if body.CustomerID != nil {
			// Kasada kart okutulan müşteri puan kazanır; puan harcama
			// sadece müşteri checkout'unda yapılır.
			earned, err := store.ApplyCustomerSale(*body.CustomerID, total, 0)
			if err == nil {
				resp.PointsEarned = earned
			}
		}

		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// GET /api/sales
func ListSalesHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Sales())
	}
}

// GET /api/sales/:id
func GetSaleHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz satış ID")
		}
		sale, err := store.Sale(id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış bulunamadı")
		}
		return c.JSON(sale)
	}
}
