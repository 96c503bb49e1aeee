// Package config loads configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds runtime settings.
type Config struct {
	DatabaseURL         string
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	ClassifierModel     string
	TopK                int
	SimilarityThreshold float64
	HistoryLimit        int
}

// Load reads env vars, applies defaults, and validates required fields.
// DATABASE_URL is optional; without it check-ins are analyzed but not
// recorded.
func Load() Config {
	cfg := Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		ClassifierModel: os.Getenv("CLASSIFIER_MODEL"),
	}

	cfg.TopK = getEnvInt("TOP_K", 3)
	cfg.SimilarityThreshold = getEnvFloat("SIMILARITY_THRESHOLD", 0.7)
	cfg.HistoryLimit = getEnvInt("HISTORY_LIMIT", 30)

	if cfg.ClassifierModel == "" {
		cfg.ClassifierModel = "gpt-4o-mini"
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
