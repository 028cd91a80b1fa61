// Package configs provides application configuration loaded from environment variables.
// All configuration is externalized via environment variables for 12-factor app compliance.
package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig holds all application configuration.
// Load it once at startup using AppLoad().
type AppConfig struct {
	// ServerPort is the TCP port the API server listens on.
	ServerPort string

	// DebugMode enables gin debug mode when set to "True".
	DebugMode string

	// DefaultContract is the contract address served by GET /api/nft-data.
	DefaultContract string

	// Live contains settings for the WebSocket live-update feed.
	Live LiveConfig

	// RateLimit contains per-client request throttling settings.
	RateLimit RateLimitConfig
}

// LiveConfig holds WebSocket live-update settings.
type LiveConfig struct {
	// UpdateSeconds is the interval between pushed updates per session.
	UpdateSeconds int
}

// RateLimitConfig holds per-client API throttling settings.
type RateLimitConfig struct {
	// RPS is the sustained requests-per-second budget per client IP.
	RPS float64

	// Burst is the short-term burst allowance per client IP.
	Burst int
}

// DefaultContractAddress is used when DEFAULT_CONTRACT is not set.
const DefaultContractAddress = "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"

// AppLoad loads all application configuration from environment variables.
// It attempts to load a .env file first (for local development).
// Call this once at application startup.
func AppLoad() *AppConfig {
	_ = godotenv.Load() // Ignore error - .env is optional

	return &AppConfig{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DebugMode:       getEnv("DEBUGMODE", "True"),
		DefaultContract: getEnv("DEFAULT_CONTRACT", DefaultContractAddress),
		Live: LiveConfig{
			UpdateSeconds: getEnvInt("LIVE_UPDATE_SECONDS", 5),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
			Burst: getEnvInt("RATE_LIMIT_BURST", 20),
		},
	}
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvFloat returns the environment variable as float64 or a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
