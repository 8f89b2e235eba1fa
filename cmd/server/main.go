package main

import (
	"log"
	"strings"

	"cafemaster-backend/internal/alert"
	"cafemaster-backend/internal/auth"
	"cafemaster-backend/internal/catalog"
	"cafemaster-backend/internal/config"
	"cafemaster-backend/internal/database"
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/inventory"
	"cafemaster-backend/internal/loyalty"
	"cafemaster-backend/internal/models"
	"cafemaster-backend/internal/pos"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func initLogger(mode string) {
	var (
		logger *zap.Logger
		err    error
	)
	if mode == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Logger başlatılamadı:", err)
	}
	zap.ReplaceGlobals(logger)
}

func main() {
	cfg := config.Load()
	initLogger(cfg.LogMode)
	defer zap.L().Sync() //nolint:errcheck

	database.Init(cfg)
	if cfg.SeedDemoData {
		database.SeedIfEmpty()
	}

	bus := EventBus.New()

	store, err := engine.NewStore(engine.Options{
		Bus:    bus,
		Logger: zap.L().Named("engine"),
		NodeID: cfg.SnowflakeNode,
	})
	if err != nil {
		zap.S().Fatalw("Store oluşturulamadı", "error", err)
	}

	if err := database.Hydrate(store); err != nil {
		zap.S().Fatalw("Kalıcı kopyadan yükleme başarısız", "error", err)
	}

	// Kalıcılık ve uyarılar olay aboneliği üzerinden bağlanır
	if err := database.RegisterRecorder(bus); err != nil {
		zap.S().Fatalw("Olay kaydedici bağlanamadı", "error", err)
	}

	alerts := alert.NewService(store)
	if err := alerts.Register(bus, cfg.LowStockCron); err != nil {
		zap.S().Fatalw("Uyarı servisi bağlanamadı", "error", err)
	}
	alerts.Start()
	defer alerts.Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			zap.S().Errorw("Beklenmeyen hata", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-manager", auth.RegisterManagerHandler(cfg))
	api.Post("/auth/register", auth.RegisterCustomerHandler(cfg, store))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Rol kapıları: GET ve POST/PUT/DELETE farklı rollere açık olduğundan
	// grup yerine route başına middleware kullanılır
	managerOnly := auth.RequireRole(models.RoleManager)
	staffOnly := auth.RequireRole(models.RoleManager, models.RoleStaff)
	reportOnly := auth.RequireRole(models.RoleManager, models.RoleStaff, models.RoleAccountant)
	customerOnly := auth.RequireRole(models.RoleCustomer)

	// Personel yönetimi
	protected.Post("/auth/register-staff", managerOnly, auth.RegisterStaffHandler(cfg))

	// Menü (listeleme oturumdaki herkese açık)
	protected.Get("/menu-items", catalog.ListMenuItemsHandler(store))
	protected.Post("/menu-items", managerOnly, catalog.CreateMenuItemHandler(store))
	protected.Get("/menu-items/:id", catalog.GetMenuItemHandler(store))
	protected.Put("/menu-items/:id", managerOnly, catalog.UpdateMenuItemHandler(store))
	protected.Delete("/menu-items/:id", managerOnly, catalog.DeleteMenuItemHandler(store))

	// Reçeteler
	protected.Get("/recipes", reportOnly, catalog.ListRecipesHandler(store))
	protected.Get("/menu-items/:id/recipe", reportOnly, catalog.GetRecipeHandler(store))
	protected.Put("/menu-items/:id/recipe", managerOnly, catalog.PutRecipeHandler(store))
	protected.Delete("/menu-items/:id/recipe", managerOnly, catalog.DeleteRecipeHandler(store))

	// Envanter
	protected.Get("/inventory-items", reportOnly, inventory.ListInventoryItemsHandler(store))
	protected.Post("/inventory-items", managerOnly, inventory.CreateInventoryItemHandler(store))
	protected.Get("/inventory-items/low-stock", reportOnly, inventory.LowStockReportHandler(store))
	protected.Get("/inventory-items/:id", reportOnly, inventory.GetInventoryItemHandler(store))
	protected.Put("/inventory-items/:id", managerOnly, inventory.UpdateInventoryItemHandler(store))
	protected.Delete("/inventory-items/:id", managerOnly, inventory.DeleteInventoryItemHandler(store))
	protected.Post("/inventory-items/:id/restock", staffOnly, inventory.RestockHandler(store))

	// Zayiat
	protected.Post("/waste-records", staffOnly, inventory.CreateWasteRecordHandler(store))
	protected.Get("/waste-records", reportOnly, inventory.ListWasteRecordsHandler(store))

	// Kasa ve mutfak
	protected.Post("/sales", staffOnly, pos.CreateSaleHandler(store))
	protected.Get("/sales", reportOnly, pos.ListSalesHandler(store))
	protected.Get("/sales/:id", reportOnly, pos.GetSaleHandler(store))
	protected.Get("/kitchen/orders", staffOnly, pos.ListKitchenOrdersHandler(store))
	protected.Post("/kitchen/orders/:id/complete", staffOnly, pos.CompleteOrderHandler(store))

	// Sadakat
	protected.Get("/customers", staffOnly, loyalty.ListCustomersHandler(store))
	protected.Get("/customers/leaderboard", staffOnly, loyalty.LeaderboardHandler(store))
	protected.Get("/customers/me", customerOnly, loyalty.MyAccountHandler(store))
	protected.Get("/customers/:id", staffOnly, loyalty.GetCustomerHandler(store))

	// Müşteri self-servis
	protected.Post("/checkout", customerOnly, loyalty.CheckoutHandler(store))
	protected.Get("/pickup/pending", customerOnly, loyalty.PendingPickupsHandler(store))
	protected.Post("/pickup/:id/acknowledge", customerOnly, loyalty.AcknowledgePickupHandler(store))
	protected.Get("/orders/:id/status", customerOnly, loyalty.OrderStatusHandler(store))
	protected.Get("/estimate", customerOnly, loyalty.EstimateHandler(store))

	zap.S().Infow("Server çalışıyor", "port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		zap.S().Fatalw("Server durdu", "error", err)
	}
}
