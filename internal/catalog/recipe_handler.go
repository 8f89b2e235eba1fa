package catalog

import (
	"cafemaster-backend/internal/database"
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RecipeIngredientRequest struct {
	InventoryItemID uint    `json:"inventory_item_id"`
	Quantity        float64 `json:"quantity"`
}

type RecipeRequest struct {
	Name          string                    `json:"name"`
	InMenu        bool                      `json:"in_menu"`
	PrepTime      int                       `json:"prep_time"`
	CleanTime     int                       `json:"clean_time"`
	UtilitiesCost float64                   `json:"utilities_cost"`
	PackagingCost float64                   `json:"packaging_cost"`
	Description   string                    `json:"description"`
	Ingredients   []RecipeIngredientRequest `json:"ingredients"`
}

// PUT /api/menu-items/:id/recipe
// Reçete ekleme ve güncelleme aynı uçtur: ürün başına en fazla bir aktif
// reçete tutulur, ürün "prepared" moduna geçer.
func PutRecipeHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuItemID, err := parseUintParam(c, "id")
		if err != nil {
			return err
		}

		var body RecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name zorunludur")
		}

		ingredients := make([]models.RecipeIngredient, 0, len(body.Ingredients))
		for _, ing := range body.Ingredients {
			ingredients = append(ingredients, models.RecipeIngredient{
				InventoryItemID: ing.InventoryItemID,
				Quantity:        ing.Quantity,
			})
		}

		recipe, err := store.PutRecipe(models.Recipe{
			MenuItemID:    menuItemID,
			Name:          body.Name,
			InMenu:        body.InMenu,
			PrepTime:      body.PrepTime,
			CleanTime:     body.CleanTime,
			UtilitiesCost: body.UtilitiesCost,
			PackagingCost: body.PackagingCost,
			Description:   body.Description,
			Ingredients:   ingredients,
		})
		if err != nil {
			switch {
			case engine.IsNotFound(err):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case engine.IsInvalidQuantity(err), engine.IsDataIntegrity(err):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete kaydedilemedi")
		}

		// Eski reçete ve malzemeleri temizle, yenisini yaz
		var old models.Recipe
		if err := database.DB.Where("menu_item_id = ?", menuItemID).First(&old).Error; err == nil {
			database.DB.Where("recipe_id = ?", old.ID).Delete(&models.RecipeIngredient{})
			database.DB.Delete(&models.Recipe{}, old.ID)
		}
		if err := database.DB.Create(&recipe).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Reçete kaydedilemedi")
		}
		database.DB.Model(&models.MenuItem{}).
			Where("id = ?", menuItemID).
			Update("fulfillment", models.FulfillmentPrepared)

		return c.JSON(recipe)
	}
}

// DELETE /api/menu-items/:id/recipe
// Reçete silinince ürün "stocked" moduna döner.
func DeleteRecipeHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuItemID, err := parseUintParam(c, "id")
		if err != nil {
			return err
		}

		if err := store.DeleteRecipe(menuItemID); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Reçete bulunamadı")
		}

		var old models.Recipe
		if err := database.DB.Where("menu_item_id = ?", menuItemID).First(&old).Error; err == nil {
			database.DB.Where("recipe_id = ?", old.ID).Delete(&models.RecipeIngredient{})
			database.DB.Delete(&models.Recipe{}, old.ID)
		}
		database.DB.Model(&models.MenuItem{}).
			Where("id = ?", menuItemID).
			Update("fulfillment", models.FulfillmentStocked)

		return c.JSON(fiber.Map{"status": "deleted"})
	}
}

// GET /api/recipes
func ListRecipesHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Recipes())
	}
}

// GET /api/menu-items/:id/recipe
func GetRecipeHandler(store *engine.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuItemID, err := parseUintParam(c, "id")
		if err != nil {
			return err
		}
		recipe, err := store.RecipeForMenuItem(menuItemID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Reçete bulunamadı")
		}
		return c.JSON(recipe)
	}
}
