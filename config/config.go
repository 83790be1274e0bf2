package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	SessionSecret   string
	RefreshInterval time.Duration
}

// Load reads configuration from the environment, with a best-effort .env
// file for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] No .env file loaded: %v", err)
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DB_URL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		SessionSecret:   getEnv("SESSION_SECRET", "slidechat-dev-secret"),
		RefreshInterval: time.Duration(getEnvInt("REFRESH_INTERVAL_SECONDS", 5)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[ERROR] Invalid integer for %s: %v", key, err)
		return fallback
	}
	return parsed
}
