// ABOUTME: Parameter sweep over the compartmental engine for what-if planning.
// ABOUTME: Runs one deterministic simulation per step of a parameter range.

package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/flufighter/flufighter/backend/models"
)

// SweepCalculator runs the compartmental engine across a range of values
// for a single parameter and reports the outbreak shape at each point.
// Sweeps use the deterministic engine only; stochastic points would need
// replication to mean anything.
type SweepCalculator struct {
	engine *CompartmentalEngine
}

// NewSweepCalculator creates a new calculator.
func NewSweepCalculator() *SweepCalculator {
	return &SweepCalculator{engine: NewCompartmentalEngine()}
}

// Sweep runs req.Steps simulations with req.Field evenly spaced from
// req.From to req.To, concurrently. The request must already be
// validated; engine-level domain errors still surface per step.
func (c *SweepCalculator) Sweep(ctx context.Context, req models.SweepRequest) (models.SweepResult, error) {
	points := make([]models.SweepPoint, req.Steps)
	step := (req.To - req.From) / float64(req.Steps-1)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRuns)
	for i := 0; i < req.Steps; i++ {
		g.Go(func() error {
			value := req.From + float64(i)*step
			params := applyField(req.Params, req.Field, value)

			compartments, err := c.engine.Run(params)
			if err != nil {
				return err
			}
			totals, err := Aggregate(compartments)
			if err != nil {
				return err
			}
			summary := models.BuildSummary(params, compartments, totals)

			points[i] = models.SweepPoint{
				Value:         value,
				PeakInfected:  summary.PeakInfected,
				PeakDay:       summary.PeakDay,
				AttackRatePct: summary.AttackRatePct,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.SweepResult{}, err
	}

	return models.SweepResult{Field: req.Field, Points: points}, nil
}

func applyField(params models.SimulationParameters, field string, value float64) models.SimulationParameters {
	switch field {
	case "vaccination_rate":
		params.VaccinationRate = value
	case "isolation_rate":
		params.IsolationRate = value
	case "r0":
		params.R0 = value
	}
	return params
}
