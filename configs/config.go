package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	Port        string
	Environment string

	// Storage backend for the catalog snapshot: "file" or "redis".
	StorageBackend string
	StoragePath    string
	StorageKey     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// Simulated generation latency per service, in milliseconds.
	MarketingDelayMS int
	AdvisorDelayMS   int
	VoiceDelayMS     int

	// RandomSeed fixes generator randomness; 0 means time-seeded.
	RandomSeed int64

	LogLevel    string
	LogEncoding string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		StoragePath:    getEnv("STORAGE_PATH", "smartbiz-products.json"),
		StorageKey:     getEnv("STORAGE_KEY", "smartbiz-products"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),

		MarketingDelayMS: getEnvInt("MARKETING_DELAY_MS", 2000),
		AdvisorDelayMS:   getEnvInt("ADVISOR_DELAY_MS", 1500),
		VoiceDelayMS:     getEnvInt("VOICE_DELAY_MS", 1000),
		RandomSeed:       getEnvInt64("RANDOM_SEED", 0),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogEncoding: getEnv("LOG_ENCODING", ""),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}
