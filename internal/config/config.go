package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	DatabaseDSN string

	JWTSecret string
	TokenTTL  time.Duration

	GeminiAPIKey string
	GeminiModel  string

	// Upper bound on a single generative-AI call before the caller
	// falls back to the deterministic path.
	AITimeout time.Duration

	// Non-fatal problems found while loading, logged once the logger
	// is up.
	Warnings []string
}

// Load reads .env when present and falls back to defaults suitable for
// local development. Production deployments set real values through the
// environment.
func Load() *Config {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Env:          getenv("APP_ENV", "development"),
		Port:         getenv("PORT", "8080"),
		DatabaseDSN:  getenv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=careernav port=5432 sslmode=disable"),
		JWTSecret:    getenv("JWT_SECRET", "dev-only-secret-change-me"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
	}
	cfg.TokenTTL = cfg.getduration("TOKEN_TTL", 24*time.Hour)
	cfg.AITimeout = cfg.getduration("AI_TIMEOUT", 30*time.Second)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid %s value %q, using default %s", key, v, fallback))
		return fallback
	}
	return d
}
