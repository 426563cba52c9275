package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	KMAServiceKey     string
	OpenWeatherAPIKey string
	GeocoderAPIKey    string

	// FetchInterval controls how often the scheduler refreshes weather.
	FetchInterval time.Duration

	// SnapshotMaxAge bounds how long a cached weather snapshot is served.
	SnapshotMaxAge time.Duration

	// Cities/Countries to keep warm in the weather cache (parallel lists).
	Cities    []string
	Countries []string

	// HistoryFile is the path of the persisted history log. Empty means
	// an in-memory log.
	HistoryFile string

	// HTTPTimeout applies to outbound provider calls.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.KMAServiceKey = os.Getenv("KMA_SERVICE_KEY")
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	interval, err := time.ParseDuration(getenvDefault("FETCH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	maxAge, err := time.ParseDuration(getenvDefault("SNAPSHOT_MAX_AGE", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_MAX_AGE: %w", err)
	}
	cfg.SnapshotMaxAge = maxAge

	httpTimeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = httpTimeout

	cfg.HistoryFile = getenvDefault("HISTORY_FILE", "history.json")
	cfg.Port = getenvDefault("PORT", "8080")

	cities, countries, err := loadTrackedCities()
	if err != nil {
		return nil, err
	}
	cfg.Cities = cities
	cfg.Countries = countries

	return cfg, nil
}

func loadTrackedCities() ([]string, []string, error) {
	city := os.Getenv("LOCATION_CITY")
	country := os.Getenv("LOCATION_COUNTRY")
	if city == "" {
		return nil, nil, nil
	}

	cities := strings.Split(city, ",")
	countries := strings.Split(country, ",")
	if len(cities) != len(countries) {
		return nil, nil, fmt.Errorf("number of cities and countries must be the same")
	}
	return cities, countries, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
