package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	intervalSeconds, err := strconv.Atoi(getEnvDefault("KUBERNETES_POLL_INTERVAL", "30"))
	if err != nil {
		log.Fatalf("Error: KUBERNETES_POLL_INTERVAL must be an integer number of seconds: %s", err)
	}

	cfg := Config{
		Namespace:    getEnv("NAMESPACE"),
		JobLabel:     getEnvDefault("JOB_LABEL", "app"),
		PollInterval: time.Duration(intervalSeconds) * time.Second,
		Port:         getEnvDefault("PORT", "8000"),
	}
	return cfg
}
