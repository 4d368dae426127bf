// ABOUTME: Declarative route table for the simulator API.
// ABOUTME: Defines all routes with their HTTP methods and handlers.

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
// Heavy marks the CPU-bound endpoints that get the stricter rate limit.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
	Heavy   bool
}

// Routes returns all API routes for registration under /api/v1.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Scenarios
		{Method: http.MethodPost, Path: "/api/v1/scenarios", Handler: h.CreateScenario},
		{Method: http.MethodGet, Path: "/api/v1/scenarios", Handler: h.ListScenarios},
		{Method: http.MethodDelete, Path: "/api/v1/scenarios", Handler: h.ClearScenarios},
		{Method: http.MethodGet, Path: "/api/v1/scenarios/{id}", Handler: h.GetScenario},
		{Method: http.MethodDelete, Path: "/api/v1/scenarios/{id}", Handler: h.DeleteScenario},

		// Results & rendering
		{Method: http.MethodGet, Path: "/api/v1/scenarios/{id}/results", Handler: h.GetResults, Heavy: true},
		{Method: http.MethodGet, Path: "/api/v1/scenarios/{id}/chart.png", Handler: h.GetChart, Heavy: true},
		{Method: http.MethodGet, Path: "/api/v1/scenarios/{id}/animation.gif", Handler: h.GetAnimation, Heavy: true},
		{Method: http.MethodGet, Path: "/api/v1/results", Handler: h.AllResults, Heavy: true},

		// Ad-hoc analysis
		{Method: http.MethodPost, Path: "/api/v1/simulate", Handler: h.Simulate, Heavy: true},
		{Method: http.MethodPost, Path: "/api/v1/sweep", Handler: h.Sweep, Heavy: true},
	}
}
