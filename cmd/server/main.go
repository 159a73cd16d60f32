// Package main is the entry point for the profitability calculator API.
// It loads the rate catalog, wires the calculation service and starts the
// HTTP server. The process refuses to start with a malformed catalog.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"profitcalc/internal/catalog"
	"profitcalc/internal/config"
	"profitcalc/internal/repositories"
	"profitcalc/internal/repositories/cache"
	"profitcalc/internal/routes"
	"profitcalc/internal/services/calculator"
)

func main() {
	config.LoadEnv()

	// Catalog source: JSON rates file by default, Postgres rate tables
	// when CATALOG_SOURCE=postgres.
	var source catalog.Source
	switch src := config.GetEnv("CATALOG_SOURCE", "file"); src {
	case "file":
		source = catalog.NewFileSource(config.GetEnv("CATALOG_FILE", "config/rates.json"))
	case "postgres":
		db, err := repositories.InitDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		source = repositories.NewCatalogRepository(db)
	default:
		log.Fatalf("Unknown CATALOG_SOURCE %q (want file or postgres)", src)
	}

	store := catalog.NewStore(source)
	cat, err := store.Reload(context.Background())
	if err != nil {
		log.Fatalf("Failed to load rate catalog: %v", err)
	}
	log.Printf("✅ Rate catalog loaded, version %s (%d categories)", cat.Version(), len(cat.Categories()))

	// Breakdown cache is optional; the calculator works without Redis.
	var breakdownCache calculator.BreakdownCache
	var cacheService *cache.CacheService
	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		redisClient := cache.NewRedisClient(&cache.RedisConfig{
			Host:     host,
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		cacheService = cache.NewCacheService(redisClient, config.GetDurationEnv("CACHE_TTL", 24*time.Hour))
		if err := cacheService.HealthCheck(context.Background()); err != nil {
			log.Printf("⚠️ Redis unavailable, breakdown caching disabled: %v", err)
			cacheService = nil
		} else {
			breakdownCache = cacheService
			log.Println("✅ Redis breakdown cache enabled")
		}
	}

	defer func() {
		if cacheService != nil {
			if err := cacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	calcService := calculator.NewService(store, breakdownCache)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/v1/admin", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, store, calcService)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
