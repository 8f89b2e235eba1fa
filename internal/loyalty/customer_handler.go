package loyalty

import (
	"sort"
	"strconv"

	"cafemaster-backend/internal/engine"

	"github.com/gofiber/fiber/v2"
)

// GET /api/customers
func ListCustomersHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Customers())
	}
}

// GET /api/customers/:id
func GetCustomerHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ID")
		}
		customer, err := store.Customer(uint(id))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}
		return c.JSON(customer)
	}
}

// GET /api/customers/leaderboard
// Puana göre azalan sıralı liste. Eşitlikte önce katılan önde.
func LeaderboardHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customers := store.Customers()
		sort.SliceStable(customers, func(i, j int) bool {
			if customers[i].Points != customers[j].Points {
				return customers[i].Points > customers[j].Points
			}
			return customers[i].JoinDate.Before(customers[j].JoinDate)
		})

		limit := c.QueryInt("limit", 10)
		if limit > 0 && len(customers) > limit {
			customers = customers[:limit]
		}
		return c.JSON(customers)
	}
}

// GET /api/customers/me
// Oturumdaki müşterinin kendi sadakat kaydı.
func MyAccountHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, ok := customerFromClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Müşteri hesabı gerekli")
		}
		customer, err := store.Customer(customerID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}
		return c.JSON(customer)
	}
}
