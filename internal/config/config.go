package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	Port           string  // HTTP listen port
	LogLevel       string  // zerolog level name
	AllowedOrigins string  // comma-separated CORS origins, "*" for any
	RateLimitRPS   float64 // sustained requests per second per client
	RateLimitBurst int     // burst allowance per client
	ModelPath      string  // path to the exported linear model, empty to skip
	DatabaseURL    string  // Postgres DSN for the audit log, empty to skip
	DisplayJitter  bool    // cosmetic noise on the individual-models breakdown
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.Port = getEnvWithDefault("PORT", "8080")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.AllowedOrigins = getEnvWithDefault("ALLOWED_ORIGINS", "*")
	cfg.RateLimitRPS = getEnvFloatWithDefault("RATE_LIMIT_RPS", 10)
	cfg.RateLimitBurst = getEnvIntWithDefault("RATE_LIMIT_BURST", 20)
	cfg.ModelPath = os.Getenv("MODEL_PATH")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DisplayJitter = getEnvBoolWithDefault("DISPLAY_JITTER", false)

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
