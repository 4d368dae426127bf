// ABOUTME: HTTP handlers for scenario management and simulation results.
// ABOUTME: Scenarios are session-scoped; clearing them resets the session.

package handlers

import (
	"errors"
	"net/http"

	"github.com/flufighter/flufighter/backend/models"
	"github.com/flufighter/flufighter/backend/services"
)

// CreateScenario validates and stores a new scenario.
func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	var input models.ScenarioInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	if err := h.validator.ValidateInput(input); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	scenario, err := h.store.Add(input.Mode, input.Params, input.Seed)
	if err != nil {
		if errors.Is(err, services.ErrStoreFull) {
			h.writeError(w, err.Error(), http.StatusConflict)
			return
		}
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, scenario)
}

// ListScenarios returns all stored scenarios in insertion order.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios := h.store.List()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": scenarios,
		"count":     len(scenarios),
	})
}

// GetScenario returns one scenario by ID.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	scenario, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, scenario)
}

// DeleteScenario removes one scenario and its cached results.
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.Delete(id); err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}
	h.runner.Invalidate(id)
	w.WriteHeader(http.StatusNoContent)
}

// ClearScenarios removes every scenario, matching a session restart.
func (h *Handler) ClearScenarios(w http.ResponseWriter, r *http.Request) {
	for _, scenario := range h.store.List() {
		h.runner.Invalidate(scenario.ID)
	}
	h.store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// GetResults runs one scenario (or serves the cached run) and returns its
// series and summary.
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	scenario, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}

	result, err := h.runner.Run(scenario)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// AllResults runs every stored scenario concurrently and returns results
// in insertion order.
func (h *Handler) AllResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.runner.RunAll(r.Context())
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}
