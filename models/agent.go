// ABOUTME: Individual agent state for the stochastic agent-based engine.
// ABOUTME: Agents progress one way (susceptible, infected, recovered) and never move.

package models

// Status is an agent's infection state. Progression is strictly
// susceptible -> infected -> recovered; no agent ever regresses.
type Status string

const (
	StatusSusceptible Status = "susceptible"
	StatusInfected    Status = "infected"
	StatusRecovered   Status = "recovered"
)

// Position is a point in the unit square, fixed at agent creation.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Agent is one member of the simulated population. The vaccinated flag and
// position are set at creation and never change; only Status mutates.
type Agent struct {
	Status     Status   `json:"status"`
	Vaccinated bool     `json:"vaccinated"`
	Position   Position `json:"position"`
}

// DaySnapshot is a full copy of every agent's state at one simulated day.
// Snapshots are recorded once and never mutated; they exist solely to
// drive the animation.
type DaySnapshot struct {
	Day    int     `json:"day"`
	Agents []Agent `json:"agents"`
}
