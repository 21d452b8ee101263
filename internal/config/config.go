package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database. Driver is "sqlite" or "postgres"; DBPath applies to
	// sqlite, the host settings to postgres.
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Planning defaults. Inflation and expected return are annual
	// percentages; the risk-free rate is a fraction.
	DefaultInflationRate  float64
	DefaultExpectedReturn float64
	RiskFreeRate          float64

	// Market data
	MarketDataPeriod   string
	MarketDataCacheTTL time.Duration
	CatalogPath        string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "file::memory:?cache=shared"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "goalplanner"),
		DBPassword: getEnv("DB_PASSWORD", "goalplanner"),
		DBName:     getEnv("DB_NAME", "goalplanner"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Planning defaults
		DefaultInflationRate:  getEnvFloat("DEFAULT_INFLATION_RATE", 5.0),
		DefaultExpectedReturn: getEnvFloat("DEFAULT_EXPECTED_RETURN", 12.0),
		RiskFreeRate:          getEnvFloat("RISK_FREE_RATE", 0.05),

		// Market data
		MarketDataPeriod: getEnv("MARKET_DATA_PERIOD", "2y"),
		CatalogPath:      getEnv("CATALOG_PATH", ""),
	}

	ttlStr := getEnv("MARKET_DATA_CACHE_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid MARKET_DATA_CACHE_TTL value '%s', falling back to 1h\n", ttlStr)
		ttl = time.Hour
	}
	config.MarketDataCacheTTL = ttl

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, value, defaultValue)
		return defaultValue
	}
	return f
}
