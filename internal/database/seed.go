package database

import (
	"time"

	"cafemaster-backend/internal/models"

	"go.uber.org/zap"
)

// SeedIfEmpty tablolar boşsa demo kafe verisini yükler: menü, envanter,
// reçeteler ve sadakat müşterileri. Var olan veriye asla dokunmaz.
func SeedIfEmpty() {
	var count int64
	DB.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	zap.S().Info("Tablolar boş, demo verisi yükleniyor")

	menuItems := []models.MenuItem{
		{ID: 1, Name: "Espresso", Category: models.CategoryBeverage, Price: 2.50, Stock: 100, Fulfillment: models.FulfillmentStocked},
		{ID: 2, Name: "Latte", Category: models.CategoryBeverage, Price: 3.50, Stock: 0, Fulfillment: models.FulfillmentPrepared},
		{ID: 3, Name: "Cappuccino", Category: models.CategoryBeverage, Price: 3.50, Stock: 100, Fulfillment: models.FulfillmentPrepared},
		{ID: 4, Name: "Croissant", Category: models.CategoryFood, Price: 2.75, Stock: 50, Fulfillment: models.FulfillmentStocked},
		{ID: 5, Name: "Avocado Toast", Category: models.CategoryFood, Price: 8.50, Stock: 0, Fulfillment: models.FulfillmentPrepared},
		{ID: 6, Name: "Chocolate Cake", Category: models.CategoryDessert, Price: 5.50, Stock: 20, Fulfillment: models.FulfillmentStocked},
		{ID: 7, Name: "Iced Tea", Category: models.CategoryBeverage, Price: 2.25, Stock: 80, Fulfillment: models.FulfillmentStocked},
		{ID: 8, Name: "Bagel & Cream Cheese", Category: models.CategoryFood, Price: 4.25, Stock: 40, Fulfillment: models.FulfillmentStocked},
		{ID: 9, Name: "Cheesecake", Category: models.CategoryDessert, Price: 6.00, Stock: 15, Fulfillment: models.FulfillmentStocked},
	}
	if err := DB.Create(&menuItems).Error; err != nil {
		zap.S().Errorf("Menü tohumlama hatası: %v", err)
	}

	inventoryItems := []models.InventoryItem{
		{ID: 1, Name: "Coffee Beans", Category: models.InventoryBeverages, Stock: 20, Unit: "kg", ReorderLevel: 10, Supplier: "Pro Roasters", Cost: 15.50},
		{ID: 2, Name: "Whole Milk", Category: models.InventoryDairy, Stock: 12, Unit: "liters", ReorderLevel: 5, Supplier: "Farm Fresh", Cost: 1.20},
		{ID: 3, Name: "All-Purpose Flour", Category: models.InventoryDryGoods, Stock: 45, Unit: "kg", ReorderLevel: 20, Supplier: "Bakers Co.", Cost: 0.80},
		{ID: 4, Name: "Avocados", Category: models.InventoryProduce, Stock: 8, Unit: "units", ReorderLevel: 10, Supplier: "Green Grocers", Cost: 1.10},
		{ID: 5, Name: "Croissants", Category: models.InventoryBakery, Stock: 24, Unit: "units", ReorderLevel: 12, Supplier: "Paris Pastries", Cost: 1.25},
		{ID: 6, Name: "Sugar", Category: models.InventoryDryGoods, Stock: 50, Unit: "kg", ReorderLevel: 15, Supplier: "Sweet Supply", Cost: 1.00},
		{ID: 7, Name: "Chocolate Syrup", Category: models.InventoryDryGoods, Stock: 4, Unit: "liters", ReorderLevel: 5, Supplier: "Sweet Supply", Cost: 5.00},
		{ID: 8, Name: "Paper Cups", Category: models.InventoryDryGoods, Stock: 0, Unit: "units", ReorderLevel: 100, Supplier: "Eco Packs", Cost: 0.05},
		{ID: 9, Name: "Bread Slices", Category: models.InventoryBakery, Stock: 50, Unit: "units", ReorderLevel: 20, Supplier: "Bakers Co.", Cost: 0.25},
	}
	if err := DB.Create(&inventoryItems).Error; err != nil {
		zap.S().Errorf("Envanter tohumlama hatası: %v", err)
	}

	recipes := []models.Recipe{
		{
			ID: 1, MenuItemID: 2, Name: "Latte", InMenu: true,
			PrepTime: 3, CleanTime: 1, UtilitiesCost: 0.05, PackagingCost: 0.15,
			Ingredients: []models.RecipeIngredient{
				{InventoryItemID: 1, Quantity: 0.02},
				{InventoryItemID: 2, Quantity: 0.25},
			},
		},
		{
			ID: 2, MenuItemID: 3, Name: "Cappuccino", InMenu: true,
			PrepTime: 3, CleanTime: 1, UtilitiesCost: 0.05, PackagingCost: 0.15,
			Ingredients: []models.RecipeIngredient{
				{InventoryItemID: 1, Quantity: 0.02},
				{InventoryItemID: 2, Quantity: 0.15},
			},
		},
		{
			ID: 3, MenuItemID: 5, Name: "Avocado Toast", InMenu: true,
			PrepTime: 7, CleanTime: 3, UtilitiesCost: 0.10, PackagingCost: 0.25,
			Ingredients: []models.RecipeIngredient{
				{InventoryItemID: 4, Quantity: 1},
				{InventoryItemID: 9, Quantity: 2},
			},
		},
	}
	if err := DB.Create(&recipes).Error; err != nil {
		zap.S().Errorf("Reçete tohumlama hatası: %v", err)
	}

	customers := []models.LoyaltyCustomer{
		{ID: 1, Name: "Alice Johnson", Email: "alice.j@example.com", Points: 125, JoinDate: date(2023, 1, 15)},
		{ID: 2, Name: "Bob Williams", Email: "bob.w@example.com", Points: 48, JoinDate: date(2023, 3, 22)},
		{ID: 3, Name: "Charlie Brown", Email: "charlie.b@example.com", Points: 280, JoinDate: date(2022, 11, 1)},
		{ID: 4, Name: "Diana Miller", Email: "diana.m@example.com", Points: 95, JoinDate: date(2023, 5, 10)},
		{ID: 5, Name: "Ethan Davis", Email: "ethan.d@example.com", Points: 15, JoinDate: date(2023, 7, 2)},
	}
	if err := DB.Create(&customers).Error; err != nil {
		zap.S().Errorf("Müşteri tohumlama hatası: %v", err)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
