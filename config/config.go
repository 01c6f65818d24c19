package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string

	// MongoDB configuration. An empty URL is not an error here: a missing
	// MONGODB_URL fails at the first connect attempt, not at process start.
	MongoURL string

	// JWT configuration
	JWTSecret string

	// Redis configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Object storage configuration
	S3Bucket  string
	AWSRegion string

	// LLM configuration (OpenAI-compatible chat completions API)
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	// CORS
	AllowedOrigins []string
}

// Load creates a new Config instance from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnv("PORT", "8080"),
		MongoURL:      os.Getenv("MONGODB_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
		S3Bucket:      getEnv("S3_BUCKET_NAME", "body-ai-photos"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		LLMAPIKey:     os.Getenv("LLM_API_KEY"),
		LLMBaseURL:    getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
