package services

import (
	"testing"

	"github.com/flufighter/flufighter/backend/models"
)

func TestAggregateSums(t *testing.T) {
	series := models.CompartmentSeries{
		SusceptibleVaccinated:   []float64{60, 55},
		SusceptibleUnvaccinated: []float64{30, 25},
		InfectedVaccinated:      []float64{4, 8},
		InfectedUnvaccinated:    []float64{6, 10},
		RecoveredVaccinated:     []float64{0, 1},
		RecoveredUnvaccinated:   []float64{0, 1},
	}

	totals, err := Aggregate(series)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if totals.Susceptible[0] != 90 || totals.Susceptible[1] != 80 {
		t.Errorf("Unexpected susceptible totals: %v", totals.Susceptible)
	}
	if totals.Infected[0] != 10 || totals.Infected[1] != 18 {
		t.Errorf("Unexpected infected totals: %v", totals.Infected)
	}
	if totals.Recovered[0] != 0 || totals.Recovered[1] != 2 {
		t.Errorf("Unexpected recovered totals: %v", totals.Recovered)
	}
}

func TestAggregateLengthMismatch(t *testing.T) {
	series := models.CompartmentSeries{
		SusceptibleVaccinated:   []float64{60, 55},
		SusceptibleUnvaccinated: []float64{30, 25},
		InfectedVaccinated:      []float64{4},
		InfectedUnvaccinated:    []float64{6, 10},
		RecoveredVaccinated:     []float64{0, 1},
		RecoveredUnvaccinated:   []float64{0, 1},
	}

	if _, err := Aggregate(series); err == nil {
		t.Fatal("Expected a length mismatch error, got nil")
	}
}
