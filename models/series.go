// ABOUTME: Day-indexed output sequences produced by the simulation engines.
// ABOUTME: CompartmentSeries carries per-subgroup counts, TimeSeries the totals.

package models

// CompartmentSeries holds the six per-day counters (susceptible, infected,
// recovered, each split by vaccination status) for day 0..days. Both
// engines emit this shape so the aggregator can sum it uniformly.
type CompartmentSeries struct {
	SusceptibleVaccinated   []float64 `json:"susceptible_vaccinated"`
	SusceptibleUnvaccinated []float64 `json:"susceptible_unvaccinated"`
	InfectedVaccinated      []float64 `json:"infected_vaccinated"`
	InfectedUnvaccinated    []float64 `json:"infected_unvaccinated"`
	RecoveredVaccinated     []float64 `json:"recovered_vaccinated"`
	RecoveredUnvaccinated   []float64 `json:"recovered_unvaccinated"`
}

// Len returns the number of recorded days (days+1 for a complete run).
func (s CompartmentSeries) Len() int {
	return len(s.SusceptibleVaccinated)
}

// TimeSeries holds the aggregate susceptible/infected/recovered totals,
// indexed by day 0..days.
type TimeSeries struct {
	Susceptible []float64 `json:"susceptible"`
	Infected    []float64 `json:"infected"`
	Recovered   []float64 `json:"recovered"`
}
