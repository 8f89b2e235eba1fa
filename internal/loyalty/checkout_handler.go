package loyalty

import (
	"math"

	"cafemaster-backend/internal/auth"
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"
	"cafemaster-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

// 10 puan = 1 birim indirim; kazanma oranının (1 birim = 10 puan) tersi.
const pointsPerCurrencyUnit = 10

type CheckoutRequest struct {
	Items          []pos.SaleLine `json:"items"`
	PointsRedeemed int            `json:"points_redeemed"`
}

type CheckoutResponse struct {
	Sale           models.Sale `json:"sale"`
	PointsEarned   int         `json:"points_earned"`
	PointsRedeemed int         `json:"points_redeemed"`
	NewBalance     int         `json:"new_balance"`
}

func customerFromClaims(c *fiber.Ctx) (uint, bool) {
	return auth.CustomerID(c)
}

// POST /api/checkout
// Müşteri self-servis siparişi: puan harcama limiti burada doğrulanır,
// defter tarafında tekrar kontrol edilmez.
func CheckoutHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, ok := customerFromClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Müşteri hesabı gerekli")
		}

		var body CheckoutRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.PointsRedeemed < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "points_redeemed negatif olamaz")
		}

		customer, err := store.Customer(customerID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}
		if body.PointsRedeemed > customer.Points {
			return fiber.NewError(fiber.StatusBadRequest, "Yetersiz puan bakiyesi")
		}

		order, subtotal, err := pos.BuildOrder(store, body.Items)
		if err != nil {
			return err
		}

		discount := math.Round(float64(body.PointsRedeemed)/pointsPerCurrencyUnit*100) / 100
		if discount > subtotal {
			return fiber.NewError(fiber.StatusBadRequest, "İndirim ara toplamı aşamaz")
		}
		total := math.Round((subtotal-discount)*100) / 100

		sale, err := store.FinalizeSale(order, subtotal, discount, total, &customerID)
		if err != nil {
			if engine.IsInvalidQuantity(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş kaydedilemedi")
		}

		earned, err := store.ApplyCustomerSale(customerID, total, body.PointsRedeemed)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Puanlar güncellenemedi")
		}

		updated, _ := store.Customer(customerID)

		return c.Status(fiber.StatusCreated).JSON(CheckoutResponse{
			Sale:           sale,
			PointsEarned:   earned,
			PointsRedeemed: body.PointsRedeemed,
			NewBalance:     updated.Points,
		})
	}
}
