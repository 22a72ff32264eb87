package main

import (
	"context"
	"strings"

	"erp-backend/internal/ai"
	"erp-backend/internal/audit"
	"erp-backend/internal/catalog"
	"erp-backend/internal/config"
	"erp-backend/internal/dashboard"
	"erp-backend/internal/finance"
	"erp-backend/internal/fulfillment"
	"erp-backend/internal/insights"
	"erp-backend/internal/procurement"
	"erp-backend/internal/sales"
	"erp-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// .env varsa yükle, yoksa sessizce geç
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Konfigürasyon yüklenemedi")
	}

	st := store.New()
	if cfg.SeedDemoData {
		st.SeedDemoData()
		log.Info("Demo verisi yüklendi")
	}

	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiDescriptionModel, cfg.GeminiInsightModel)
		if err != nil {
			log.WithError(err).Fatal("Gemini istemcisi başlatılamadı")
		}
		generator = gemini
	} else {
		generator = ai.StaticGenerator{}
	}

	recorder := audit.NewRecorder(st, nil)
	engine := fulfillment.NewService(st, recorder, nil)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.WithError(err).Error("Beklenmeyen hata")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Katalog (ana veri)
	api.Get("/products", catalog.ListProductsHandler(st))
	api.Post("/products", catalog.CreateProductHandler(st))
	api.Put("/products/:id", catalog.UpdateProductHandler(st))
	api.Post("/products/:id/generate-description", catalog.GenerateDescriptionHandler(st, generator))

	api.Get("/suppliers", catalog.ListSuppliersHandler(st))
	api.Post("/suppliers", catalog.CreateSupplierHandler(st))
	api.Get("/customers", catalog.ListCustomersHandler(st))
	api.Post("/customers", catalog.CreateCustomerHandler(st))
	api.Get("/warehouse-locations", catalog.ListWarehouseLocationsHandler(st))
	api.Post("/warehouse-locations", catalog.CreateWarehouseLocationHandler(st))

	// Satın alma
	api.Get("/purchase-orders", procurement.ListPurchaseOrdersHandler(st))
	api.Post("/purchase-orders", procurement.CreatePurchaseOrderHandler(engine))
	api.Post("/purchase-orders/:id/receive", procurement.ReceivePurchaseOrderHandler(engine))

	// Satış
	api.Get("/orders", sales.ListOrdersHandler(st))
	api.Post("/orders", sales.CreateOrderHandler(engine))
	api.Post("/orders/:id/ship", sales.ShipOrderHandler(engine))
	api.Post("/orders/:id/deliver", sales.DeliverOrderHandler(engine))

	// Finans
	api.Get("/invoices", finance.ListInvoicesHandler(st))
	api.Get("/transactions", finance.ListTransactionsHandler(st))

	// Dashboard & AI
	api.Get("/dashboard/summary", dashboard.SummaryHandler(st))
	api.Post("/insights", insights.GenerateInsightsHandler(st, generator))

	// Aktivite kayıtları
	api.Get("/audit-logs", audit.ListAuditLogsHandler(st))

	log.WithField("port", cfg.HTTPPort).Info("Sunucu çalışıyor")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("Sunucu başlatılamadı")
	}
}
