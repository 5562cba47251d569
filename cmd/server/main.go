package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pharmachain-backend/internal/audit"
	"pharmachain-backend/internal/auth"
	"pharmachain-backend/internal/config"
	"pharmachain-backend/internal/database"
	"pharmachain-backend/internal/distributor"
	"pharmachain-backend/internal/manufacturer"
	"pharmachain-backend/internal/regulator"
	"pharmachain-backend/internal/retailer"
	"pharmachain-backend/internal/scheduler"
	"pharmachain-backend/internal/store"
	"pharmachain-backend/pkg/logger"
)

func newStore(cfg *config.Config) store.Store {
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return store.NewRedis(client)
	case "memory":
		return store.NewMemory()
	default:
		s, err := store.NewGorm(database.DB)
		if err != nil {
			log.Fatalf("collection store init failed: %v", err)
		}
		return s
	}
}

func newGateway(cfg *config.Config) auth.Gateway {
	if cfg.AuthProvider == "remote" {
		return auth.NewRemote(cfg.AuthProviderURL, cfg.AuthProviderAPIKey)
	}
	return auth.NewLocal(database.DB)
}

func main() {
	cfg := config.Load()

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	database.Init(cfg)

	collections := newStore(cfg)
	gateway := newGateway(cfg)

	manufacturerSvc := manufacturer.NewService(collections)
	distributorSvc := distributor.NewService(collections)
	retailerSvc := retailer.NewService(collections)
	regulatorSvc := regulator.NewService(collections)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			baseLogger.Error("unexpected error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unexpected server error",
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
	api.Post("/auth/signup", auth.SignUpHandler(cfg, gateway))
	api.Post("/auth/login", auth.LoginHandler(cfg, gateway))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Post("/auth/logout", auth.LogoutHandler(gateway))
	protected.Get("/auth/me", auth.MeHandler())

	// Role selection
	protected.Get("/roles", auth.RolesHandler())

	// Manufacturer dashboard
	manufacturerRoutes := protected.Group("/manufacturer")
	manufacturerRoutes.Get("/production-logs", manufacturer.ListProductionLogsHandler(manufacturerSvc))
	manufacturerRoutes.Post("/production-logs", manufacturer.CreateProductionLogHandler(manufacturerSvc))
	manufacturerRoutes.Get("/transactions", manufacturer.ListTransactionsHandler(manufacturerSvc))
	manufacturerRoutes.Get("/summary", manufacturer.SummaryHandler(manufacturerSvc))
	manufacturerRoutes.Get("/compliance", manufacturer.ComplianceStatusHandler())

	// Distributor dashboard
	distributorRoutes := protected.Group("/distributor")
	distributorRoutes.Get("/shipments", distributor.ListShipmentsHandler(distributorSvc))
	distributorRoutes.Post("/shipments/:id/validate", distributor.ValidateShipmentHandler(distributorSvc))
	distributorRoutes.Put("/shipments/:id/status", distributor.UpdateShipmentStatusHandler(distributorSvc))
	distributorRoutes.Get("/inventory", distributor.ListInventoryHandler(distributorSvc))
	distributorRoutes.Put("/inventory/:id/quantity", distributor.UpdateInventoryQuantityHandler(distributorSvc))
	distributorRoutes.Get("/summary", distributor.SummaryHandler(distributorSvc))

	// Retailer dashboard
	retailerRoutes := protected.Group("/retailer")
	retailerRoutes.Get("/sales", retailer.ListSalesHandler(retailerSvc))
	retailerRoutes.Post("/sales", retailer.RecordSaleHandler(retailerSvc))
	retailerRoutes.Get("/stock", retailer.ListStockHandler(retailerSvc))
	retailerRoutes.Post("/stock/verify", retailer.VerifyStockHandler(retailerSvc))
	retailerRoutes.Get("/certificates", retailer.ListCertificatesHandler(retailerSvc))
	retailerRoutes.Get("/certificates/:id/download", retailer.DownloadCertificateHandler(retailerSvc))
	retailerRoutes.Get("/summary", retailer.SummaryHandler(retailerSvc))

	// Regulator dashboard
	regulatorRoutes := protected.Group("/regulator")
	regulatorRoutes.Get("/supply-chain", regulator.ListSupplyChainHandler(regulatorSvc))
	regulatorRoutes.Get("/discrepancies", regulator.ListDiscrepanciesHandler(regulatorSvc))
	regulatorRoutes.Put("/discrepancies/:id/status", regulator.UpdateDiscrepancyStatusHandler(regulatorSvc))
	regulatorRoutes.Get("/report", regulator.GenerateReportHandler(regulatorSvc))
	regulatorRoutes.Get("/summary", regulator.SummaryHandler(regulatorSvc))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	snapshots := scheduler.New(cfg.ReportSnapshotCron, regulatorSvc, collections, baseLogger.Named("scheduler"))
	snapshots.Start()
	defer snapshots.Stop()

	baseLogger.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
