// ABOUTME: Run orchestration: routes scenarios to the right engine and caches results.
// ABOUTME: Dedupes concurrent runs with singleflight; runs all scenarios via errgroup.

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/flufighter/flufighter/backend/cache"
	"github.com/flufighter/flufighter/backend/models"
)

// maxConcurrentRuns bounds the number of simulations executing at once
// when all stored scenarios are run together.
const maxConcurrentRuns = 4

// Runner executes scenarios and caches completed RunResults by scenario
// ID. Separate runs share no mutable state; each agent run owns its own
// seeded rng, so concurrent execution is safe.
type Runner struct {
	store *ScenarioStore
	cache *cache.Cache
	group singleflight.Group
}

// NewRunner creates a runner backed by the given store and result cache.
func NewRunner(store *ScenarioStore, c *cache.Cache) *Runner {
	return &Runner{store: store, cache: c}
}

// Run returns the completed result for a scenario, executing it if no
// cached result exists. Concurrent requests for the same scenario share a
// single execution.
func (r *Runner) Run(scenario models.Scenario) (*models.RunResult, error) {
	key := resultKey(scenario.ID)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*models.RunResult), nil
	}

	result, err, _ := r.group.Do(scenario.ID, func() (interface{}, error) {
		start := time.Now()
		res, err := r.execute(scenario)
		if err != nil {
			return nil, err
		}
		r.cache.Set(key, res)
		slog.Debug("Simulation run completed",
			"scenario_id", scenario.ID,
			"mode", scenario.Mode,
			"days", scenario.Params.Days,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.RunResult), nil
}

// RunAll executes every stored scenario, up to maxConcurrentRuns at a
// time, and returns results in insertion order.
func (r *Runner) RunAll(ctx context.Context) ([]*models.RunResult, error) {
	scenarios := r.store.List()
	results := make([]*models.RunResult, len(scenarios))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRuns)
	for i, scenario := range scenarios {
		g.Go(func() error {
			res, err := r.Run(scenario)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", scenario.Index, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Invalidate drops the cached result and rendered artifacts for one
// scenario.
func (r *Runner) Invalidate(id string) {
	r.cache.Delete(resultKey(id))
	r.cache.Delete(ChartKey(id))
	r.cache.Delete(AnimationKey(id))
}

// Execute runs a one-shot simulation that is not backed by a stored
// scenario and therefore never cached.
func Execute(mode models.Mode, params models.SimulationParameters, seed int64) (*models.RunResult, error) {
	return run(models.Scenario{Mode: mode, Params: params, Seed: seed})
}

func (r *Runner) execute(scenario models.Scenario) (*models.RunResult, error) {
	return run(scenario)
}

func run(scenario models.Scenario) (*models.RunResult, error) {
	var (
		compartments models.CompartmentSeries
		snapshots    []models.DaySnapshot
		err          error
	)

	switch scenario.Mode {
	case models.ModeCompartmental:
		compartments, err = NewCompartmentalEngine().Run(scenario.Params)
	case models.ModeAgent:
		compartments, snapshots, err = NewAgentEngine(scenario.Seed).Run(scenario.Params)
	default:
		return nil, fmt.Errorf("unknown simulation mode %q", scenario.Mode)
	}
	if err != nil {
		return nil, err
	}

	totals, err := Aggregate(compartments)
	if err != nil {
		return nil, err
	}

	return &models.RunResult{
		ScenarioID:    scenario.ID,
		Index:         scenario.Index,
		Mode:          scenario.Mode,
		Series:        totals,
		Compartments:  compartments,
		Summary:       models.BuildSummary(scenario.Params, compartments, totals),
		SnapshotCount: len(snapshots),
		Snapshots:     snapshots,
	}, nil
}

func resultKey(id string) string {
	return "run:" + id
}

// ChartKey is the cache key for a scenario's rendered line chart.
func ChartKey(id string) string {
	return "chart:" + id
}

// AnimationKey is the cache key for a scenario's rendered animation.
func AnimationKey(id string) string {
	return "animation:" + id
}
