package database

import (
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"

	"go.uber.org/zap"
)

// Hydrate kalıcı kopyayı okuyup motor store'unu doldurur. Açılışta bir
// kez çağrılır; çalışma anında motor yalnızca bellekteki kopyayı kullanır.
func Hydrate(store *engine.Store) error {
	var menu []models.MenuItem
	if err := DB.Order("id asc").Find(&menu).Error; err != nil {
		return err
	}

	var inventory []models.InventoryItem
	if err := DB.Preload("PurchaseHistory").Order("id asc").Find(&inventory).Error; err != nil {
		return err
	}

	var recipes []models.Recipe
	if err := DB.Preload("Ingredients").Order("id asc").Find(&recipes).Error; err != nil {
		return err
	}

	var sales []models.Sale
	if err := DB.Preload("Items").Order("timestamp desc").Find(&sales).Error; err != nil {
		return err
	}

	var customers []models.LoyaltyCustomer
	if err := DB.Order("id asc").Find(&customers).Error; err != nil {
		return err
	}

	var waste []models.WasteRecord
	if err := DB.Order("timestamp desc").Find(&waste).Error; err != nil {
		return err
	}

	store.LoadState(menu, inventory, recipes, sales, customers, waste)
	zap.S().Infow("Motor store'u yüklendi",
		"menu_items", len(menu),
		"inventory_items", len(inventory),
		"recipes", len(recipes),
		"sales", len(sales),
		"customers", len(customers),
		"waste_records", len(waste),
	)
	return nil
}
