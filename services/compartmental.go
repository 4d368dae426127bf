// ABOUTME: Deterministic compartmental SIR engine split by vaccination status.
// ABOUTME: Evolves six counters per day via closed-form update equations.

package services

import (
	"math"

	"github.com/flufighter/flufighter/backend/models"
)

// CompartmentalEngine evolves aggregate population fractions. It holds no
// state; identical parameters always produce identical output.
type CompartmentalEngine struct{}

// NewCompartmentalEngine creates a new engine.
func NewCompartmentalEngine() *CompartmentalEngine {
	return &CompartmentalEngine{}
}

// Run simulates params.Days steps and returns the six per-day counter
// sequences, each of length days+1. The population is split into
// vaccinated and unvaccinated pools proportional to the vaccination rate,
// with the initial infected seeded in the same proportion.
func (e *CompartmentalEngine) Run(params models.SimulationParameters) (models.CompartmentSeries, error) {
	if err := params.Validate(); err != nil {
		return models.CompartmentSeries{}, err
	}

	population := float64(params.PopulationSize)
	seed := float64(params.InitialInfected)
	vaccinatedPool := population * params.VaccinationRate
	unvaccinatedPool := population - vaccinatedPool

	capacity := params.Days + 1
	series := models.CompartmentSeries{
		SusceptibleVaccinated:   make([]float64, 1, capacity),
		SusceptibleUnvaccinated: make([]float64, 1, capacity),
		InfectedVaccinated:      make([]float64, 1, capacity),
		InfectedUnvaccinated:    make([]float64, 1, capacity),
		RecoveredVaccinated:     make([]float64, 1, capacity),
		RecoveredUnvaccinated:   make([]float64, 1, capacity),
	}
	series.SusceptibleVaccinated[0] = vaccinatedPool - seed*params.VaccinationRate
	series.SusceptibleUnvaccinated[0] = unvaccinatedPool - seed*(1-params.VaccinationRate)
	series.InfectedVaccinated[0] = seed * params.VaccinationRate
	series.InfectedUnvaccinated[0] = seed * (1 - params.VaccinationRate)

	for day := 1; day <= params.Days; day++ {
		susV := series.SusceptibleVaccinated[day-1]
		susU := series.SusceptibleUnvaccinated[day-1]
		infV := series.InfectedVaccinated[day-1]
		infU := series.InfectedUnvaccinated[day-1]
		recV := series.RecoveredVaccinated[day-1]
		recU := series.RecoveredUnvaccinated[day-1]

		// The min clamp keeps susceptible counts from going negative; it
		// is the only numerical guard the update rules need. Recovery can
		// never overdraw infected because recovery_rate <= 1.
		newInfV := math.Min(infV*params.R0*params.VaccineEfficacy*(susV/population)*(1-params.IsolationRate), susV)
		newInfU := math.Min(infU*params.R0*(susU/population)*(1-params.IsolationRate), susU)
		newRecV := infV * params.RecoveryRate
		newRecU := infU * params.RecoveryRate

		series.SusceptibleVaccinated = append(series.SusceptibleVaccinated, susV-newInfV)
		series.SusceptibleUnvaccinated = append(series.SusceptibleUnvaccinated, susU-newInfU)
		series.InfectedVaccinated = append(series.InfectedVaccinated, infV+newInfV-newRecV)
		series.InfectedUnvaccinated = append(series.InfectedUnvaccinated, infU+newInfU-newRecU)
		series.RecoveredVaccinated = append(series.RecoveredVaccinated, recV+newRecV)
		series.RecoveredUnvaccinated = append(series.RecoveredUnvaccinated, recU+newRecU)
	}

	return series, nil
}
