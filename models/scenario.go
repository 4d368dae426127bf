// ABOUTME: Scenario records, API request/response models, and run results.
// ABOUTME: A scenario pins a mode, parameters, and seed so reruns reproduce.

package models

import "time"

// Mode selects which engine a scenario runs through.
type Mode string

const (
	ModeCompartmental Mode = "compartmental"
	ModeAgent         Mode = "agent"
)

// Valid reports whether m names a known engine.
func (m Mode) Valid() bool {
	return m == ModeCompartmental || m == ModeAgent
}

// Scenario is one stored simulation configuration. Index is the 1-based
// insertion position ("Simulation 3"), kept stable across deletions.
// Seed is fixed at creation so agent-mode reruns yield the same outbreak.
type Scenario struct {
	ID        string               `json:"id"`
	Index     int                  `json:"index"`
	Mode      Mode                 `json:"mode"`
	Params    SimulationParameters `json:"params"`
	Seed      int64                `json:"seed,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// ScenarioInput is the request body for adding a scenario or running a
// one-shot simulation. Seed is optional; zero means pick one.
type ScenarioInput struct {
	Mode   Mode                 `json:"mode"`
	Params SimulationParameters `json:"params"`
	Seed   int64                `json:"seed,omitempty"`
}

// RunResult is a completed simulation run. Snapshots are retained for
// agent-mode runs to drive the animation but are not serialized into the
// results payload; clients fetch the rendered GIF instead.
type RunResult struct {
	ScenarioID    string            `json:"scenario_id,omitempty"`
	Index         int               `json:"index,omitempty"`
	Mode          Mode              `json:"mode"`
	Series        TimeSeries        `json:"series"`
	Compartments  CompartmentSeries `json:"compartments"`
	Summary       OutbreakSummary   `json:"summary"`
	SnapshotCount int               `json:"snapshot_count,omitempty"`
	Snapshots     []DaySnapshot     `json:"-"`
}

// SweepRequest asks for the compartmental engine to be run across a range
// of values for one parameter field.
type SweepRequest struct {
	Params SimulationParameters `json:"params"`
	Field  string               `json:"field"` // vaccination_rate, isolation_rate, or r0
	From   float64              `json:"from"`
	To     float64              `json:"to"`
	Steps  int                  `json:"steps"`
}

// SweepPoint is the outcome of one step of a parameter sweep.
type SweepPoint struct {
	Value         float64 `json:"value"`
	PeakInfected  float64 `json:"peak_infected"`
	PeakDay       int     `json:"peak_day"`
	AttackRatePct float64 `json:"attack_rate_pct"`
}

// SweepResult is the full response for a parameter sweep.
type SweepResult struct {
	Field  string       `json:"field"`
	Points []SweepPoint `json:"points"`
}

// ErrorResponse is the JSON error envelope returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
