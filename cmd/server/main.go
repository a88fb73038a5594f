package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/amorgan/brandhub/internal/config"
	"github.com/amorgan/brandhub/internal/database"
	"github.com/amorgan/brandhub/internal/gateway"
	"github.com/amorgan/brandhub/internal/handlers"
	"github.com/amorgan/brandhub/internal/middleware"
	"github.com/amorgan/brandhub/internal/storage"
	"github.com/amorgan/brandhub/internal/types"

	_ "github.com/amorgan/brandhub/docs/api" // Swagger docs
)

// @title BrandHub API
// @version 1.0.0
// @description Personal brand dashboard backend: AI content generation, brand voice analysis, entity store

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Build the entity store
	var store storage.Storage
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		if err := database.Seed(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		store = storage.NewGormStore(db)
	default:
		store = storage.NewMemoryStore()
	}
	log.Printf("Entity store: %s", cfg.StoreDriver)

	// Build the content generation gateway
	var gw *gateway.Gateway
	if cfg.ProviderStub {
		log.Println("Provider stub mode: serving deterministic fallback content")
		gw = gateway.New(nil, true)
	} else {
		provider := gateway.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel,
			time.Duration(cfg.OpenAITimeout)*time.Second)
		gw = gateway.New(provider, false)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("brandhub")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	contentHandler := &handlers.ContentHandler{Gateway: gw}
	userHandler := &handlers.UserHandler{Store: store}
	platformHandler := &handlers.PlatformHandler{Store: store}
	brandSettingsHandler := &handlers.BrandSettingsHandler{Store: store}
	postHandler := &handlers.ContentPostHandler{Store: store}
	analyticsHandler := &handlers.AnalyticsHandler{Store: store}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, Store: store}

	api.Get("/health", healthHandler.Health)

	// Content generation routes
	api.Post("/generate-content", contentHandler.GenerateContent)
	api.Post("/analyze-brand-voice", contentHandler.AnalyzeBrandVoice)
	api.Post("/repurpose-content", contentHandler.RepurposeContent)

	// Entity routes; session auth applies only when an Authorizer is configured
	auth := middleware.AuthUser(cfg)

	api.Post("/users", auth, userHandler.CreateUser)
	api.Get("/users/by-username/:username", auth, userHandler.GetUserByUsername)
	api.Get("/users/:id", auth, userHandler.GetUser)

	api.Post("/platforms", auth, platformHandler.CreatePlatform)
	api.Get("/platforms/:id", auth, platformHandler.GetPlatform)
	api.Patch("/platforms/:id", auth, platformHandler.UpdatePlatform)
	api.Delete("/platforms/:id", auth, platformHandler.DeletePlatform)
	api.Post("/platforms/:id/connect", auth, platformHandler.ConnectPlatform)
	api.Get("/users/:userId/platforms", auth, platformHandler.GetPlatformsByUser)

	api.Get("/users/:userId/brand-settings", auth, brandSettingsHandler.GetBrandSettings)
	api.Post("/users/:userId/brand-settings", auth, brandSettingsHandler.CreateBrandSettings)
	api.Patch("/users/:userId/brand-settings", auth, brandSettingsHandler.UpdateBrandSettings)

	api.Post("/content-posts", auth, postHandler.CreateContentPost)
	api.Get("/content-posts/:id", auth, postHandler.GetContentPost)
	api.Patch("/content-posts/:id", auth, postHandler.UpdateContentPost)
	api.Delete("/content-posts/:id", auth, postHandler.DeleteContentPost)
	api.Get("/users/:userId/content-posts", auth, postHandler.GetContentPostsByUser)
	api.Get("/platforms/:platformId/content-posts", auth, postHandler.GetContentPostsByPlatform)

	api.Post("/analytics", auth, analyticsHandler.CreateAnalytics)
	api.Get("/analytics/:id", auth, analyticsHandler.GetAnalytics)
	api.Patch("/analytics/:id", auth, analyticsHandler.UpdateAnalytics)
	api.Get("/users/:userId/analytics", auth, analyticsHandler.GetAnalyticsByUser)
	api.Get("/platforms/:platformId/analytics", auth, analyticsHandler.GetAnalyticsByPlatform)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := types.ErrTypeInternal

	var custom *types.CustomError
	if errors.As(err, &custom) {
		code = custom.Code
		message = custom.Message
		errorType = custom.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
