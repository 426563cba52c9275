package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/minjae-kw/meal-recommendation/internal/api/http"
	"github.com/minjae-kw/meal-recommendation/internal/config"
	"github.com/minjae-kw/meal-recommendation/internal/geo"
	"github.com/minjae-kw/meal-recommendation/internal/history"
	"github.com/minjae-kw/meal-recommendation/internal/location"
	"github.com/minjae-kw/meal-recommendation/internal/recommend"
	"github.com/minjae-kw/meal-recommendation/internal/scheduler"
	"github.com/minjae-kw/meal-recommendation/internal/weather"
	"github.com/minjae-kw/meal-recommendation/internal/weather/providers"
)

// Seoul City Hall; used when no location is configured.
var defaultLocation = geo.Coordinate{Lat: 37.5663, Lng: 126.9779}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// History log: file-backed when configured, in-memory otherwise.
	var histStore history.Store
	if cfg.HistoryFile != "" {
		histStore = history.NewFileStore(cfg.HistoryFile)
	} else {
		histStore = history.NewMemoryStore()
	}

	// Weather providers with resilience (backoff + circuit breaker).
	var provs []weather.Provider
	provs = append(provs, providers.NewKMAProvider(httpClient, cfg.KMAServiceKey))
	provs = append(provs, providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey))

	weatherSvc := weather.NewService(provs, cfg.SnapshotMaxAge)
	recommender := recommend.NewService(histStore)

	// Locations kept warm by the scheduler: geocoded cities when a key is
	// configured, otherwise a fixed default.
	locs := resolveLocations(cfg)

	sched := scheduler.New(locs, cfg.FetchInterval, weatherSvc)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "meal-recommendation",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "meal-recommendation",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, weatherSvc, recommender, histStore)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

func resolveLocations(cfg *config.AppConfig) []geo.Coordinate {
	if len(cfg.Cities) == 0 {
		return []geo.Coordinate{defaultLocation}
	}

	locs, err := location.Resolve(cfg.GeocoderAPIKey, cfg.Cities, cfg.Countries)
	if err != nil {
		log.Printf("geocoding configured cities failed, falling back to default location: %v", err)
		return []geo.Coordinate{defaultLocation}
	}
	return locs
}
