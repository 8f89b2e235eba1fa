package catalog

import (
	"strconv"

	"cafemaster-backend/internal/database"
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type MenuItemRequest struct {
	Name     string              `json:"name"`
	Category models.MenuCategory `json:"category"`
	Price    float64             `json:"price"`
	ImageURL string              `json:"image_url"`
	Stock    int                 `json:"stock"` // sadece reçetesiz ürünlerde anlamlı
}

func validMenuCategory(cat models.MenuCategory) bool {
	switch cat {
	case models.CategoryFood, models.CategoryBeverage, models.CategoryDessert:
		return true
	}
	return false
}

// POST /api/menu-items
func CreateMenuItemHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body MenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name zorunludur")
		}
		if !validMenuCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "category 'Food', 'Beverage' veya 'Dessert' olmalı")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price negatif olamaz")
		}

		item, err := store.PutMenuItem(models.MenuItem{
			Name:     body.Name,
			Category: body.Category,
			Price:    body.Price,
			ImageURL: body.ImageURL,
			Stock:    body.Stock,
		})
		if err != nil {
			if engine.IsInvalidQuantity(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü oluşturulamadı")
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/menu-items/:id
func UpdateMenuItemHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseUintParam(c, "id")
		if err != nil {
			return err
		}

		existing, err := store.MenuItem(id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü ürünü bulunamadı")
		}

		var body MenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name zorunludur")
		}
		if !validMenuCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "category 'Food', 'Beverage' veya 'Dessert' olmalı")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price negatif olamaz")
		}

		existing.Name = body.Name
		existing.Category = body.Category
		existing.Price = body.Price
		existing.ImageURL = body.ImageURL
		existing.Stock = body.Stock

		item, err := store.PutMenuItem(existing)
		if err != nil {
			if engine.IsInvalidQuantity(err) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü güncellenemedi")
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü kaydedilemedi")
		}

		return c.JSON(item)
	}
}

// DELETE /api/menu-items/:id
// Ürünle birlikte aktif reçetesi de silinir.
func DeleteMenuItemHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseUintParam(c, "id")
		if err != nil {
			return err
		}

		if err := store.DeleteMenuItem(id); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü ürünü bulunamadı")
		}

		database.DB.Where("menu_item_id = ?", id).Delete(&models.Recipe{})
		if err := database.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü silinemedi")
		}

		return c.JSON(fiber.Map{"status": "deleted"})
	}
}

// GET /api/menu-items
func ListMenuItemsHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.MenuItems())
	}
}

// GET /api/menu-items/:id
func GetMenuItemHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseUintParam(c, "id")
		if err != nil {
			return err
		}
		item, err := store.MenuItem(id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü ürünü bulunamadı")
		}
		return c.JSON(item)
	}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Geçersiz ID")
	}
	return uint(v), nil
}
