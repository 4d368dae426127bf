// ABOUTME: Stochastic agent-based epidemic engine with per-day contact sampling.
// ABOUTME: Tracks individual agents and records a full population snapshot each day.

package services

import (
	"math"
	"math/rand"
	"time"

	"github.com/flufighter/flufighter/backend/models"
)

// AgentEngine simulates individual agents with Poisson contact sampling
// and per-day recovery rolls. The rng is owned exclusively by the engine,
// so a run is reproducible for a given seed and must not be shared across
// concurrent runs.
type AgentEngine struct {
	rng *rand.Rand
}

// NewAgentEngine creates an engine seeded with seed. A zero seed picks a
// time-based one, making the run non-reproducible.
func NewAgentEngine(seed int64) *AgentEngine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &AgentEngine{rng: rand.New(rand.NewSource(seed))}
}

// Run simulates params.Days steps over an individually tracked population.
// It returns per-day counts split by status and vaccination class plus one
// snapshot per day (days+1 snapshots of population_size agents each).
func (e *AgentEngine) Run(params models.SimulationParameters) (models.CompartmentSeries, []models.DaySnapshot, error) {
	if err := params.Validate(); err != nil {
		return models.CompartmentSeries{}, nil, err
	}

	agents := e.newPopulation(params)

	capacity := params.Days + 1
	series := models.CompartmentSeries{
		SusceptibleVaccinated:   make([]float64, 0, capacity),
		SusceptibleUnvaccinated: make([]float64, 0, capacity),
		InfectedVaccinated:      make([]float64, 0, capacity),
		InfectedUnvaccinated:    make([]float64, 0, capacity),
		RecoveredVaccinated:     make([]float64, 0, capacity),
		RecoveredUnvaccinated:   make([]float64, 0, capacity),
	}
	snapshots := make([]models.DaySnapshot, 0, capacity)

	for day := 0; day <= params.Days; day++ {
		recordCounts(&series, agents)
		snapshots = append(snapshots, snapshot(day, agents))
		if day == params.Days {
			break
		}
		e.contactPhase(agents, params)
		e.recoveryPhase(agents, params)
	}

	return series, snapshots, nil
}

// newPopulation creates the agents. The first initial_infected agents by
// creation order start infected; vaccination and position are drawn
// independently per agent and fixed for the run.
func (e *AgentEngine) newPopulation(params models.SimulationParameters) []models.Agent {
	agents := make([]models.Agent, params.PopulationSize)
	for i := range agents {
		agents[i] = models.Agent{
			Status:     models.StatusSusceptible,
			Vaccinated: e.rng.Float64() < params.VaccinationRate,
			Position: models.Position{
				X: e.rng.Float64(),
				Y: e.rng.Float64(),
			},
		}
	}
	for i := 0; i < params.InitialInfected; i++ {
		agents[i].Status = models.StatusInfected
	}
	return agents
}

// contactPhase lets every currently infected agent draw Poisson(r0)
// contacts, sampled uniformly over the whole population. Self-selection
// is possible and harmless (an infected target is never susceptible);
// sampling deliberately does not exclude it. Infections take effect
// immediately, so an agent infected early in the pass generates contacts
// of its own when the pass reaches it.
func (e *AgentEngine) contactPhase(agents []models.Agent, params models.SimulationParameters) {
	for i := range agents {
		if agents[i].Status != models.StatusInfected {
			continue
		}
		contacts := poisson(e.rng, params.R0)
		for c := 0; c < contacts; c++ {
			target := &agents[e.rng.Intn(len(agents))]
			if target.Status != models.StatusSusceptible {
				continue
			}
			// Isolation neutralizes the contact outright.
			if e.rng.Float64() >= 1-params.IsolationRate {
				continue
			}
			// Effective contacts always infect the unvaccinated; for
			// vaccinated targets the per-contact infection probability is
			// the efficacy multiplier, mirroring the compartmental rule.
			if target.Vaccinated && e.rng.Float64() >= params.VaccineEfficacy {
				continue
			}
			target.Status = models.StatusInfected
		}
	}
}

// recoveryPhase rolls recovery for every currently infected agent,
// including agents infected earlier the same day.
func (e *AgentEngine) recoveryPhase(agents []models.Agent, params models.SimulationParameters) {
	for i := range agents {
		if agents[i].Status != models.StatusInfected {
			continue
		}
		if e.rng.Float64() < params.RecoveryRate {
			agents[i].Status = models.StatusRecovered
		}
	}
}

func recordCounts(series *models.CompartmentSeries, agents []models.Agent) {
	var susV, susU, infV, infU, recV, recU float64
	for i := range agents {
		switch {
		case agents[i].Status == models.StatusSusceptible && agents[i].Vaccinated:
			susV++
		case agents[i].Status == models.StatusSusceptible:
			susU++
		case agents[i].Status == models.StatusInfected && agents[i].Vaccinated:
			infV++
		case agents[i].Status == models.StatusInfected:
			infU++
		case agents[i].Vaccinated:
			recV++
		default:
			recU++
		}
	}
	series.SusceptibleVaccinated = append(series.SusceptibleVaccinated, susV)
	series.SusceptibleUnvaccinated = append(series.SusceptibleUnvaccinated, susU)
	series.InfectedVaccinated = append(series.InfectedVaccinated, infV)
	series.InfectedUnvaccinated = append(series.InfectedUnvaccinated, infU)
	series.RecoveredVaccinated = append(series.RecoveredVaccinated, recV)
	series.RecoveredUnvaccinated = append(series.RecoveredUnvaccinated, recU)
}

func snapshot(day int, agents []models.Agent) models.DaySnapshot {
	frame := make([]models.Agent, len(agents))
	copy(frame, agents)
	return models.DaySnapshot{Day: day, Agents: frame}
}

// poisson draws from a Poisson distribution with the given mean using
// Knuth's multiplication method. Fine for the small means used here
// (r0 is at most single digits).
func poisson(rng *rand.Rand, mean float64) int {
	if mean <= 0 {
		return 0
	}
	threshold := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= threshold {
			return k
		}
		k++
	}
}
