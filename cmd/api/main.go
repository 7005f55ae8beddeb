package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/inkwell/inkwell/api/internal/cache"
	"github.com/inkwell/inkwell/api/internal/config"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/handlers/tags"
	"github.com/inkwell/inkwell/api/internal/imagestore"
	"github.com/inkwell/inkwell/api/internal/routes"
	"github.com/inkwell/inkwell/api/pkg/response"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := database.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	// Initialize remote image store
	if err := imagestore.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	// Initialize cache (optional)
	if err := cache.Initialize(cfg); err != nil {
		log.Printf("Cache disabled: %v", err)
	}

	// Predefined tags must exist before the first request is served
	if err := tags.SeedPredefined(database.GetDatabase()); err != nil {
		log.Fatalf("Failed to seed predefined tags: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    64 * 1024 * 1024,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	// Setup routes
	routes.Setup(app, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(response.Response{
		Success: false,
		Message: err.Error(),
	})
}
