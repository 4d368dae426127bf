// ABOUTME: Outbreak summary derived from a finished simulation run.
// ABOUTME: Reports peak, attack rates per vaccination class, and severity findings.

package models

import "fmt"

// Finding is a severity-tagged observation about a finished run.
type Finding struct {
	Severity string `json:"severity"` // "info", "warning", "critical"
	Message  string `json:"message"`
}

// OutbreakSummary condenses a run's dynamics into headline numbers.
// ExtinctionDay is the first day after day 0 with fewer than one infected,
// or -1 if the outbreak was still active at the end of the run.
type OutbreakSummary struct {
	PeakInfected              float64   `json:"peak_infected"`
	PeakDay                   int       `json:"peak_day"`
	FinalRecovered            float64   `json:"final_recovered"`
	AttackRatePct             float64   `json:"attack_rate_pct"`
	VaccinatedAttackRatePct   float64   `json:"vaccinated_attack_rate_pct"`
	UnvaccinatedAttackRatePct float64   `json:"unvaccinated_attack_rate_pct"`
	ExtinctionDay             int       `json:"extinction_day"`
	Findings                  []Finding `json:"findings"`
}

// BuildSummary computes the outbreak summary for a completed run.
// Attack rates are measured as the share of each class that left the
// susceptible pool over the run, against the class size on day 0.
func BuildSummary(params SimulationParameters, compartments CompartmentSeries, totals TimeSeries) OutbreakSummary {
	s := OutbreakSummary{ExtinctionDay: -1}
	last := compartments.Len() - 1
	if last < 0 {
		return s
	}

	for day, infected := range totals.Infected {
		if infected > s.PeakInfected {
			s.PeakInfected = infected
			s.PeakDay = day
		}
		if day > 0 && infected < 1 && s.ExtinctionDay == -1 {
			s.ExtinctionDay = day
		}
	}

	s.FinalRecovered = totals.Recovered[last]

	population := float64(params.PopulationSize)
	if population > 0 {
		everInfected := population - totals.Susceptible[last]
		s.AttackRatePct = everInfected / population * 100
	}

	s.VaccinatedAttackRatePct = classAttackRatePct(
		compartments.SusceptibleVaccinated,
		compartments.InfectedVaccinated,
		compartments.RecoveredVaccinated,
	)
	s.UnvaccinatedAttackRatePct = classAttackRatePct(
		compartments.SusceptibleUnvaccinated,
		compartments.InfectedUnvaccinated,
		compartments.RecoveredUnvaccinated,
	)

	s.Findings = buildFindings(s)
	return s
}

// classAttackRatePct computes the attack rate within one vaccination class.
// The class size is taken from day 0 of that class's own sequences, which
// works for both engines (the agent engine's class split is stochastic).
func classAttackRatePct(susceptible, infected, recovered []float64) float64 {
	if len(susceptible) == 0 {
		return 0
	}
	classSize := susceptible[0] + infected[0] + recovered[0]
	if classSize <= 0 {
		return 0
	}
	last := len(susceptible) - 1
	return (classSize - susceptible[last]) / classSize * 100
}

func buildFindings(s OutbreakSummary) []Finding {
	var findings []Finding

	switch {
	case s.AttackRatePct > 60:
		findings = append(findings, Finding{
			Severity: "critical",
			Message:  fmt.Sprintf("Severe outbreak: %.1f%% of the population was infected", s.AttackRatePct),
		})
	case s.AttackRatePct > 30:
		findings = append(findings, Finding{
			Severity: "warning",
			Message:  fmt.Sprintf("Significant outbreak: %.1f%% of the population was infected", s.AttackRatePct),
		})
	default:
		findings = append(findings, Finding{
			Severity: "info",
			Message:  fmt.Sprintf("Outbreak contained: %.1f%% of the population was infected", s.AttackRatePct),
		})
	}

	if s.ExtinctionDay >= 0 {
		findings = append(findings, Finding{
			Severity: "info",
			Message:  fmt.Sprintf("Outbreak died out on day %d", s.ExtinctionDay),
		})
	} else {
		findings = append(findings, Finding{
			Severity: "warning",
			Message:  "Outbreak still active at the end of the simulated period",
		})
	}

	if s.UnvaccinatedAttackRatePct > 0 && s.VaccinatedAttackRatePct < s.UnvaccinatedAttackRatePct {
		findings = append(findings, Finding{
			Severity: "info",
			Message: fmt.Sprintf("Vaccinated attack rate %.1f%% vs %.1f%% unvaccinated",
				s.VaccinatedAttackRatePct, s.UnvaccinatedAttackRatePct),
		})
	}

	return findings
}
