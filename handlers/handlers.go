// ABOUTME: HTTP handler wiring and shared JSON response helpers.
// ABOUTME: Owns the scenario store, runner, validator, and sweep calculator.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flufighter/flufighter/backend/cache"
	"github.com/flufighter/flufighter/backend/config"
	"github.com/flufighter/flufighter/backend/models"
	"github.com/flufighter/flufighter/backend/services"
)

// maxRequestBodySize caps JSON request bodies at 1MB.
const maxRequestBodySize = 1 << 20

type Handler struct {
	cfg       *config.Config
	cache     *cache.Cache
	store     *services.ScenarioStore
	runner    *services.Runner
	validator *services.RequestValidator
	sweeper   *services.SweepCalculator
}

// NewHandler wires the service layer for the given config and cache.
func NewHandler(cfg *config.Config, c *cache.Cache) *Handler {
	store := services.NewScenarioStore(cfg.MaxScenarios)
	return &Handler{
		cfg:       cfg,
		cache:     c,
		store:     store,
		runner:    services.NewRunner(store, c),
		validator: services.NewRequestValidator(cfg.MaxPopulation, cfg.MaxDays),
		sweeper:   services.NewSweepCalculator(),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{Error: message, Code: code})
}

// decodeBody decodes a size-capped JSON request body into v, translating
// decode failures into client errors.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
		} else {
			h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		}
		return false
	}
	return true
}
