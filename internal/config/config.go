package config

import (
	"os"
	"strconv"
	"time"

	"offerforge/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	AI       AIConfig
	Cache    CacheConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// AIConfig holds generation service settings
type AIConfig struct {
	OpenAIKey   string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// CacheConfig holds redis cache settings
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
	Prefix   string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return nil, errors.ConfigInvalid("OPENAI_API_KEY is required")
	}

	model := getEnvOrDefault("LLM_MODEL", "gpt-4o")

	cfg := &Config{
		Database: DatabaseConfig{URL: dbURL},
		AI: AIConfig{
			OpenAIKey:   openaiKey,
			Model:       model,
			BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			MaxTokens:   getEnvIntOrDefault("MAX_TOKENS", 4000),
			Temperature: getEnvFloatOrDefault("TEMPERATURE", 0.7),
			Timeout:     time.Duration(getEnvIntOrDefault("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Cache: CacheConfig{
			RedisURL: getEnvOrDefault("REDIS_URL", ""),
			// Fingerprint entries live for four hours
			TTL:    time.Duration(getEnvIntOrDefault("CACHE_TTL_SECONDS", 4*60*60)) * time.Second,
			Prefix: getEnvOrDefault("CACHE_PREFIX", "offerforge"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
