package main

import (
	"strings"
	"time"

	"bakehouse-backend/internal/auth"
	"bakehouse-backend/internal/config"
	"bakehouse-backend/internal/dashboard"
	"bakehouse-backend/internal/delivery"
	"bakehouse-backend/internal/logger"
	"bakehouse-backend/internal/reports"
	"bakehouse-backend/internal/scheduler"
	"bakehouse-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.Must(logger.New())
	defer log.Sync()

	store := session.NewStore(time.Duration(cfg.SessionTTLHours) * time.Hour)

	sched := scheduler.New(store, log)
	sched.Start()
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("unexpected error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
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
	api.Post("/auth/login", auth.LoginHandler(cfg, store, log))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg, store))

	protected.Post("/auth/logout", auth.LogoutHandler(store, log))
	protected.Get("/auth/me", auth.MeHandler())

	// Dashboard
	protected.Get("/dashboard", dashboard.DashboardHandler())

	// Fair delivery ledger
	protected.Get("/fair-deliveries", delivery.ListFairDeliveriesHandler())
	protected.Get("/fair-deliveries/form", delivery.GetFairFormHandler())
	protected.Put("/fair-deliveries/form", delivery.UpdateFairFormHandler())
	protected.Post("/fair-deliveries/form/products", delivery.AddFairProductHandler())
	protected.Put("/fair-deliveries/form/products/:id", delivery.UpdateFairProductHandler())
	protected.Delete("/fair-deliveries/form/products/:id", delivery.RemoveFairProductHandler())
	protected.Post("/fair-deliveries/form/cancel", delivery.CancelFairEditHandler())
	protected.Post("/fair-deliveries/save", delivery.SaveFairDeliveryHandler())
	protected.Post("/fair-deliveries/:id/edit", delivery.StartFairEditHandler())
	protected.Delete("/fair-deliveries/:id", delivery.DeleteFairDeliveryHandler())

	// Shop delivery run
	protected.Get("/shop-delivery/draft", delivery.GetShopDraftHandler())
	protected.Put("/shop-delivery/draft", delivery.UpdateShopDraftHandler())
	protected.Post("/shop-delivery/draft/shops", delivery.AddShopHandler())
	protected.Put("/shop-delivery/draft/shops/:id", delivery.UpdateShopHandler())
	protected.Delete("/shop-delivery/draft/shops/:id", delivery.RemoveShopHandler())
	protected.Post("/shop-delivery/draft/shops/:id/items", delivery.AddShopItemHandler())
	protected.Put("/shop-delivery/draft/shops/:shopId/items/:itemId", delivery.UpdateShopItemHandler())
	protected.Delete("/shop-delivery/draft/shops/:shopId/items/:itemId", delivery.RemoveShopItemHandler())
	protected.Get("/shop-delivery/draft/totals", delivery.ShopDraftTotalsHandler())
	protected.Post("/shop-delivery/save", delivery.SaveShopDeliveryHandler())

	// Reports
	protected.Get("/reports/summary", reports.SummaryHandler())
	protected.Get("/reports/daily", reports.DailyReportsHandler())
	protected.Get("/reports/monthly", reports.MonthlyReportsHandler())
	protected.Get("/reports/top-shops", reports.TopShopsHandler())
	protected.Get("/reports/top-fairs", reports.TopFairsHandler())
	protected.Get("/reports/session", reports.SessionReportHandler())
	protected.Get("/reports/export", reports.ExportHandler())

	log.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
