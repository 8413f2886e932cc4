// Package config loads environment configuration for the CLI.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the batch process.
type Config struct {
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file and returns the effective configuration.
func Load() Config {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	return Config{
		LogLevel:  getEnv("ACCOUNTS_LOG_LEVEL", "info"),
		LogFormat: getEnv("ACCOUNTS_LOG_FORMAT", "console"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
