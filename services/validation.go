// ABOUTME: Request-level validation of simulation inputs against service caps.
// ABOUTME: Separate from the engines' domain validation, which is unconditional.

package services

import (
	"fmt"

	"github.com/flufighter/flufighter/backend/models"
)

// RequestValidator applies the configured service limits to incoming
// simulation requests. The caps mirror the original form's input ranges
// and keep a single request from monopolizing the process; the engines
// themselves only enforce the epidemiological domain constraints.
type RequestValidator struct {
	maxPopulation int
	maxDays       int
}

// NewRequestValidator creates a validator with the given caps.
func NewRequestValidator(maxPopulation, maxDays int) *RequestValidator {
	return &RequestValidator{maxPopulation: maxPopulation, maxDays: maxDays}
}

// ValidateInput checks a scenario or one-shot simulation request.
func (v *RequestValidator) ValidateInput(input models.ScenarioInput) error {
	if !input.Mode.Valid() {
		return fmt.Errorf("mode must be %q or %q", models.ModeCompartmental, models.ModeAgent)
	}
	if err := input.Params.Validate(); err != nil {
		return err
	}
	if input.Params.PopulationSize > v.maxPopulation {
		return fmt.Errorf("population_size exceeds the limit of %d", v.maxPopulation)
	}
	if input.Params.Days > v.maxDays {
		return fmt.Errorf("days exceeds the limit of %d", v.maxDays)
	}
	return nil
}

// ValidateSweep checks a parameter sweep request. The swept parameters
// are all rates except r0, so the range bounds are validated against the
// target field's own domain.
func (v *RequestValidator) ValidateSweep(req models.SweepRequest) error {
	if err := v.ValidateInput(models.ScenarioInput{Mode: models.ModeCompartmental, Params: req.Params}); err != nil {
		return err
	}
	switch req.Field {
	case "vaccination_rate", "isolation_rate":
		if req.From < 0 || req.To > 1 {
			return fmt.Errorf("%s sweep range must stay within [0,1]", req.Field)
		}
	case "r0":
		if req.From < 0 {
			return fmt.Errorf("r0 sweep range must be non-negative")
		}
	default:
		return fmt.Errorf("field must be one of vaccination_rate, isolation_rate, r0")
	}
	if req.From > req.To {
		return fmt.Errorf("sweep range is inverted: from %g > to %g", req.From, req.To)
	}
	if req.Steps < 2 || req.Steps > 101 {
		return fmt.Errorf("steps must be between 2 and 101")
	}
	return nil
}
