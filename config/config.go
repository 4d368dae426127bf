// ABOUTME: Configuration loader for the simulator backend.
// ABOUTME: Reads settings from environment variables (with optional .env file) and defaults.

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port     string
	CacheTTL int // seconds, TTL for completed runs and rendered artifacts

	// Rate limiting
	RateLimitEnabled  bool // enable per-IP rate limiting (default: true)
	RateLimitDefault  int  // requests per minute for read endpoints (default: 120)
	RateLimitSimulate int  // requests per minute for simulate/render endpoints (default: 30)

	// Scenario limits (mirror the original form's input ranges)
	MaxPopulation int // upper bound on population_size accepted from clients
	MaxDays       int // upper bound on simulated days accepted from clients
	MaxScenarios  int // upper bound on stored scenarios per session

	// Rendering
	ChartWidth     int // line chart width in pixels
	ChartHeight    int // line chart height in pixels
	AnimationSize  int // square animation canvas size in pixels
	AnimationDelay int // GIF frame delay in 1/100ths of a second
}

// Load builds a Config from the environment. A .env file in the working
// directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		CacheTTL: getEnvInt("CACHE_TTL", 300),

		RateLimitEnabled:  getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitDefault:  getEnvInt("RATE_LIMIT_DEFAULT", 120),
		RateLimitSimulate: getEnvInt("RATE_LIMIT_SIMULATE", 30),

		MaxPopulation: getEnvInt("MAX_POPULATION", 500),
		MaxDays:       getEnvInt("MAX_DAYS", 50),
		MaxScenarios:  getEnvInt("MAX_SCENARIOS", 20),

		ChartWidth:     getEnvInt("CHART_WIDTH", 800),
		ChartHeight:    getEnvInt("CHART_HEIGHT", 480),
		AnimationSize:  getEnvInt("ANIMATION_SIZE", 400),
		AnimationDelay: getEnvInt("ANIMATION_DELAY", 10),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %d", c.CacheTTL)
	}
	if c.MaxPopulation <= 0 || c.MaxDays <= 0 || c.MaxScenarios <= 0 {
		return fmt.Errorf("MAX_POPULATION, MAX_DAYS and MAX_SCENARIOS must be positive")
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 || c.AnimationSize <= 0 {
		return fmt.Errorf("render dimensions must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
