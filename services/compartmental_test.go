package services

import (
	"errors"
	"math"
	"testing"

	"github.com/flufighter/flufighter/backend/models"
)

// referenceParams is the documented demo configuration: 100 people, 5
// initially infected, r0 2.0, 20 days, 70% vaccinated.
func referenceParams() models.SimulationParameters {
	return models.SimulationParameters{
		PopulationSize:  100,
		InitialInfected: 5,
		R0:              2.0,
		RecoveryRate:    0.1,
		IsolationRate:   0.5,
		Days:            20,
		VaccinationRate: 0.7,
		VaccineEfficacy: 0.9,
	}
}

func TestCompartmentalConservation(t *testing.T) {
	series, err := NewCompartmentalEngine().Run(referenceParams())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if series.Len() != 21 {
		t.Fatalf("Expected 21 recorded days, got %d", series.Len())
	}

	for day := 0; day < series.Len(); day++ {
		sum := series.SusceptibleVaccinated[day] + series.SusceptibleUnvaccinated[day] +
			series.InfectedVaccinated[day] + series.InfectedUnvaccinated[day] +
			series.RecoveredVaccinated[day] + series.RecoveredUnvaccinated[day]
		if math.Abs(sum-100) > 100*1e-6 {
			t.Errorf("Day %d: population not conserved, sum = %.9f", day, sum)
		}
	}
}

func TestCompartmentalMonotoneRecovered(t *testing.T) {
	series, err := NewCompartmentalEngine().Run(referenceParams())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for day := 1; day < series.Len(); day++ {
		recPrev := series.RecoveredVaccinated[day-1] + series.RecoveredUnvaccinated[day-1]
		rec := series.RecoveredVaccinated[day] + series.RecoveredUnvaccinated[day]
		if rec < recPrev {
			t.Errorf("Day %d: recovered decreased from %.6f to %.6f", day, recPrev, rec)
		}
	}
}

func TestCompartmentalDeterminism(t *testing.T) {
	engine := NewCompartmentalEngine()
	first, err := engine.Run(referenceParams())
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := engine.Run(referenceParams())
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	for day := 0; day < first.Len(); day++ {
		if first.InfectedVaccinated[day] != second.InfectedVaccinated[day] ||
			first.InfectedUnvaccinated[day] != second.InfectedUnvaccinated[day] ||
			first.SusceptibleVaccinated[day] != second.SusceptibleVaccinated[day] ||
			first.SusceptibleUnvaccinated[day] != second.SusceptibleUnvaccinated[day] ||
			first.RecoveredVaccinated[day] != second.RecoveredVaccinated[day] ||
			first.RecoveredUnvaccinated[day] != second.RecoveredUnvaccinated[day] {
			t.Fatalf("Day %d: runs with identical parameters diverged", day)
		}
	}
}

func TestCompartmentalZeroR0(t *testing.T) {
	params := referenceParams()
	params.R0 = 0

	series, err := NewCompartmentalEngine().Run(params)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	initial := float64(params.InitialInfected)
	for day := 0; day < series.Len(); day++ {
		infected := series.InfectedVaccinated[day] + series.InfectedUnvaccinated[day]
		if infected > initial+1e-9 {
			t.Errorf("Day %d: infected %.6f exceeds initial %d with zero R0", day, infected, params.InitialInfected)
		}
	}
}

func TestCompartmentalFullIsolation(t *testing.T) {
	params := referenceParams()
	params.IsolationRate = 1.0

	series, err := NewCompartmentalEngine().Run(params)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// No new infections means the susceptible pool never shrinks.
	susDay0 := series.SusceptibleVaccinated[0] + series.SusceptibleUnvaccinated[0]
	for day := 1; day < series.Len(); day++ {
		sus := series.SusceptibleVaccinated[day] + series.SusceptibleUnvaccinated[day]
		if math.Abs(sus-susDay0) > 1e-9 {
			t.Errorf("Day %d: susceptible changed under full isolation: %.6f vs %.6f", day, sus, susDay0)
		}
	}
}

func TestCompartmentalReferenceScenario(t *testing.T) {
	series, err := NewCompartmentalEngine().Run(referenceParams())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	totals, err := Aggregate(series)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if len(totals.Infected) != 21 {
		t.Fatalf("Expected 21 entries, got %d", len(totals.Infected))
	}
	if math.Abs(totals.Infected[0]-5.0) > 1e-9 {
		t.Errorf("Expected total infected to start at 5.0, got %.6f", totals.Infected[0])
	}
	day0 := totals.Susceptible[0] + totals.Infected[0] + totals.Recovered[0]
	if math.Abs(day0-100) > 1e-6 {
		t.Errorf("Expected day-0 totals to sum to 100, got %.6f", day0)
	}
	for day, infected := range totals.Infected {
		if infected < 0 || infected > 100 {
			t.Errorf("Day %d: total infected %.6f out of [0,100]", day, infected)
		}
	}
}

func TestCompartmentalParameterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SimulationParameters)
	}{
		{"zero population", func(p *models.SimulationParameters) { p.PopulationSize = 0 }},
		{"negative initial infected", func(p *models.SimulationParameters) { p.InitialInfected = -1 }},
		{"initial infected above population", func(p *models.SimulationParameters) { p.InitialInfected = 101 }},
		{"negative r0", func(p *models.SimulationParameters) { p.R0 = -0.5 }},
		{"recovery rate above one", func(p *models.SimulationParameters) { p.RecoveryRate = 1.5 }},
		{"zero days", func(p *models.SimulationParameters) { p.Days = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := referenceParams()
			tt.mutate(&params)

			_, err := NewCompartmentalEngine().Run(params)
			if err == nil {
				t.Fatal("Expected a validation error, got nil")
			}
			var domainErr *models.DomainError
			if !errors.As(err, &domainErr) {
				t.Errorf("Expected a *models.DomainError, got %T", err)
			}
		})
	}
}
