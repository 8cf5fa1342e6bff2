package config

import (
	"os"
	"strconv"
)

// Config holds process configuration, sourced from the environment.
type Config struct {
	Port           string
	Env            string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load builds the configuration from environment variables, falling back to
// documented defaults: PORT=8080, ENV=development, RATE_LIMIT_RPS=5,
// RATE_LIMIT_BURST=10.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
