// ABOUTME: Liveness endpoint for the simulator backend.
// ABOUTME: Reports status and the number of stored scenarios.

package handlers

import "net/http"

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"scenarios": h.store.Count(),
	})
}
