// ABOUTME: One-shot simulation endpoint, stateless and uncached.
// ABOUTME: Runs either engine directly from the request body.

package handlers

import (
	"errors"
	"net/http"

	"github.com/flufighter/flufighter/backend/models"
	"github.com/flufighter/flufighter/backend/services"
)

// Simulate runs a simulation without storing a scenario. Parameter domain
// violations map to 400; anything else from the engines is a server fault.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var input models.ScenarioInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	if err := h.validator.ValidateInput(input); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := services.Execute(input.Mode, input.Params, input.Seed)
	if err != nil {
		var domainErr *models.DomainError
		if errors.As(err, &domainErr) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
