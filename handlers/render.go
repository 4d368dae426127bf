// ABOUTME: Rendering endpoints serving the line chart PNG and animation GIF.
// ABOUTME: Rendered bytes are cached per scenario alongside the run result.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/flufighter/flufighter/backend/models"
	"github.com/flufighter/flufighter/backend/render"
	"github.com/flufighter/flufighter/backend/services"
)

// GetChart serves the scenario's S/I/R line chart as PNG.
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	scenario, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}

	key := services.ChartKey(scenario.ID)
	if cached, ok := h.cache.Get(key); ok {
		serveImage(w, "image/png", cached.([]byte))
		return
	}

	result, err := h.runner.Run(scenario)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	title := fmt.Sprintf("Simulation %d: Population Dynamics", scenario.Index)
	png, err := render.Chart(title, result.Series, h.cfg.ChartWidth, h.cfg.ChartHeight)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.cache.Set(key, png)
	serveImage(w, "image/png", png)
}

// GetAnimation serves the agent-mode scenario's snapshot animation as an
// animated GIF. Compartmental scenarios track no individuals, so there is
// nothing to animate.
func (h *Handler) GetAnimation(w http.ResponseWriter, r *http.Request) {
	scenario, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}
	if scenario.Mode != models.ModeAgent {
		h.writeError(w, "Animation is only available for agent-mode scenarios", http.StatusBadRequest)
		return
	}

	key := services.AnimationKey(scenario.ID)
	if cached, ok := h.cache.Get(key); ok {
		serveImage(w, "image/gif", cached.([]byte))
		return
	}

	result, err := h.runner.Run(scenario)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	gifBytes, err := render.Animation(result.Snapshots, h.cfg.AnimationSize, h.cfg.AnimationDelay)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.cache.Set(key, gifBytes)
	serveImage(w, "image/gif", gifBytes)
}

func serveImage(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
