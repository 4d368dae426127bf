// ABOUTME: Entry point for the FluFighter simulator backend service.
// ABOUTME: Provides an HTTP API for epidemic scenario simulation and rendering.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/flufighter/flufighter/backend/cache"
	"github.com/flufighter/flufighter/backend/config"
	"github.com/flufighter/flufighter/backend/handlers"
	"github.com/flufighter/flufighter/backend/logger"
	"github.com/flufighter/flufighter/backend/middleware"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting FluFighter simulator backend")
	slog.Info("Scenario limits", "max_population", cfg.MaxPopulation, "max_days", cfg.MaxDays, "max_scenarios", cfg.MaxScenarios)

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Result cache initialized", "ttl", cacheTTL)

	h := handlers.NewHandler(cfg, c)

	var defaultLimiter, heavyLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		heavyLimiter = middleware.NewRateLimiter(cfg.RateLimitSimulate, time.Minute)
		slog.Info("Rate limiting enabled", "default_per_min", cfg.RateLimitDefault, "simulate_per_min", cfg.RateLimitSimulate)
	}

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if route.Heavy {
			limiter = heavyLimiter
		}
		handler := middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.CORS,
			middleware.Limit(limiter),
		)
		mux.HandleFunc(route.Method+" "+route.Path, handler)
	}

	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
