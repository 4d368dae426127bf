// ABOUTME: HTTP handler for parameter sweeps across the compartmental engine.
// ABOUTME: Reports outbreak shape per swept value for what-if comparisons.

package handlers

import (
	"net/http"

	"github.com/flufighter/flufighter/backend/models"
)

// Sweep runs the compartmental engine across a parameter range.
func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req models.SweepRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateSweep(req); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.sweeper.Sweep(r.Context(), req)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
