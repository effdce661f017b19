package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Pipeline
	Faculty  string // Organizational scope for all literature lookups
	Language string // Analyzer language code

	// Responses
	RecentRecommendations int // How many pushed recommendations to return per query

	// Literature URL checker
	URLCheckInterval time.Duration
	URLCheckMaxAge   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/uniassist?sslmode=disable"),
		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		Faculty:  getEnv("FACULTY", "Физико-математический, информационный и технологический"),
		Language: getEnv("LANGUAGE", "ru"),

		RecentRecommendations: getEnvInt("RECENT_RECOMMENDATIONS", 10),

		URLCheckInterval: getEnvDuration("URL_CHECK_INTERVAL", 6*time.Hour),
		URLCheckMaxAge:   getEnvDuration("URL_CHECK_MAX_AGE", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
