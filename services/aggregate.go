// ABOUTME: Aggregator summing per-subgroup sequences into total S/I/R series.
// ABOUTME: Shared by both engines; errors only on a length mismatch.

package services

import (
	"fmt"

	"github.com/flufighter/flufighter/backend/models"
)

// Aggregate sums the vaccinated and unvaccinated sequences elementwise for
// each of susceptible, infected, and recovered. Both engines emit equal
// length sequences, so the mismatch error is unreachable in practice.
func Aggregate(series models.CompartmentSeries) (models.TimeSeries, error) {
	n := series.Len()
	for name, seq := range map[string][]float64{
		"susceptible_unvaccinated": series.SusceptibleUnvaccinated,
		"infected_vaccinated":      series.InfectedVaccinated,
		"infected_unvaccinated":    series.InfectedUnvaccinated,
		"recovered_vaccinated":     series.RecoveredVaccinated,
		"recovered_unvaccinated":   series.RecoveredUnvaccinated,
	} {
		if len(seq) != n {
			return models.TimeSeries{}, fmt.Errorf("compartment series length mismatch: %s has %d entries, expected %d", name, len(seq), n)
		}
	}

	totals := models.TimeSeries{
		Susceptible: make([]float64, n),
		Infected:    make([]float64, n),
		Recovered:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		totals.Susceptible[i] = series.SusceptibleVaccinated[i] + series.SusceptibleUnvaccinated[i]
		totals.Infected[i] = series.InfectedVaccinated[i] + series.InfectedUnvaccinated[i]
		totals.Recovered[i] = series.RecoveredVaccinated[i] + series.RecoveredUnvaccinated[i]
	}
	return totals, nil
}
