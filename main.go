package main

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"kesher-manager-backend/config"
	"kesher-manager-backend/database"
	_ "kesher-manager-backend/docs" // Import generated docs
	"kesher-manager-backend/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"
)

// @title Kesher Manager API Documentation
// @version 1.0
// @description This is the API documentation for the Kesher food distribution management system
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@kesher.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// matchOriginPattern checks if an origin matches a pattern with wildcards
func matchOriginPattern(pattern, origin string) bool {
	if !strings.Contains(pattern, "*") {
		return false
	}

	parts := strings.Split(pattern, "*")
	if len(parts) != 2 {
		return false
	}

	return strings.HasPrefix(origin, parts[0]) && strings.HasSuffix(origin, parts[1])
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize database
	if err := database.ConnectDatabase(cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := database.SeedInitialBoxes(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
		AppName:      cfg.AppName,
		ServerHeader: "Fiber",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	// Configure CORS based on origins
	corsConfig := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        86400, // 24 hours
	}

	// If origins contain wildcard, don't use credentials
	if len(cfg.CorsOrigins) == 1 && cfg.CorsOrigins[0] == "*" {
		corsConfig.AllowOrigins = []string{"*"}
		corsConfig.AllowCredentials = false
	} else {
		// Use custom origin validator to support wildcard patterns
		corsConfig.AllowOriginsFunc = func(origin string) bool {
			for _, allowedOrigin := range cfg.CorsOrigins {
				if origin == allowedOrigin {
					return true
				}
				if matchOriginPattern(allowedOrigin, origin) {
					return true
				}
			}
			return false
		}
		corsConfig.AllowCredentials = true
	}

	app.Use(cors.New(corsConfig))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 60 * time.Second,
	}))

	// Setup routes
	routes.SetupRoutes(app, cfg, database.DB)

	// Start server
	log.Println("════════════════════════════════════════════════════════════")
	log.Printf("✓ Server ready on port %s", cfg.Port)
	log.Printf("📊 Health check: %s/api/health", cfg.AppUrl)
	log.Printf("📚 API documentation: %s/docs", cfg.AppUrl)
	log.Println("════════════════════════════════════════════════════════════")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
