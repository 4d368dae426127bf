// ABOUTME: Simulation parameter record shared by both engines.
// ABOUTME: Validates the epidemiological domain constraints at engine entry.

package models

import "fmt"

// SimulationParameters is the immutable input contract for a simulation run.
// Callers pass it by value; engines never mutate it.
type SimulationParameters struct {
	PopulationSize  int     `json:"population_size"`
	InitialInfected int     `json:"initial_infected"`
	R0              float64 `json:"r0"`
	RecoveryRate    float64 `json:"recovery_rate"`
	IsolationRate   float64 `json:"isolation_rate"`
	Days            int     `json:"days"`
	VaccinationRate float64 `json:"vaccination_rate"`
	VaccineEfficacy float64 `json:"vaccine_efficacy"`
}

// DomainError reports a parameter outside its legal range. Engines fail
// fast with one of these rather than let NaNs or negative populations
// propagate through a run.
type DomainError struct {
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("parameter %s: %s", e.Field, e.Message)
}

// Validate checks every field against its domain constraint and returns a
// *DomainError for the first violation found.
//
// R0 of exactly zero is accepted: it is the documented zero-contact
// boundary (no agent ever draws a contact) even though the interactive
// form never produces it.
func (p SimulationParameters) Validate() error {
	if p.PopulationSize <= 0 {
		return &DomainError{Field: "population_size", Message: "must be positive"}
	}
	if p.InitialInfected < 0 || p.InitialInfected > p.PopulationSize {
		return &DomainError{Field: "initial_infected", Message: "must be between 0 and population_size"}
	}
	if p.R0 < 0 {
		return &DomainError{Field: "r0", Message: "must be non-negative"}
	}
	if p.Days <= 0 {
		return &DomainError{Field: "days", Message: "must be positive"}
	}
	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"recovery_rate", p.RecoveryRate},
		{"isolation_rate", p.IsolationRate},
		{"vaccination_rate", p.VaccinationRate},
		{"vaccine_efficacy", p.VaccineEfficacy},
	} {
		if rate.value < 0 || rate.value > 1 {
			return &DomainError{Field: rate.name, Message: "must be between 0 and 1"}
		}
	}
	return nil
}
