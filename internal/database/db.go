package database

import (
	"cafemaster-backend/internal/config"
	"cafemaster-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		zap.S().Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.InventoryItem{},
		&models.PurchaseRecord{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Sale{},
		&models.OrderItem{},
		&models.LoyaltyCustomer{},
		&models.WasteRecord{},
	)
	if err != nil {
		zap.S().Fatalf("AutoMigrate hatası: %v", err)
	}

	zap.S().Info("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
