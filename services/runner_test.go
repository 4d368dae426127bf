package services

import (
	"context"
	"testing"
	"time"

	"github.com/flufighter/flufighter/backend/cache"
	"github.com/flufighter/flufighter/backend/models"
)

func newTestRunner(t *testing.T) (*Runner, *ScenarioStore) {
	t.Helper()
	store := NewScenarioStore(10)
	return NewRunner(store, cache.New(time.Minute)), store
}

func TestRunnerCachesResults(t *testing.T) {
	runner, store := newTestRunner(t)

	sc, _ := store.Add(models.ModeCompartmental, referenceParams(), 0)

	first, err := runner.Run(sc)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := runner.Run(sc)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	if first != second {
		t.Error("Expected the cached result on the second run")
	}

	runner.Invalidate(sc.ID)
	third, err := runner.Run(sc)
	if err != nil {
		t.Fatalf("Run after invalidation failed: %v", err)
	}
	if third == first {
		t.Error("Expected a fresh result after invalidation")
	}
}

func TestRunnerAgentRunShape(t *testing.T) {
	runner, store := newTestRunner(t)

	params := referenceParams()
	sc, _ := store.Add(models.ModeAgent, params, 42)

	result, err := runner.Run(sc)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Mode != models.ModeAgent {
		t.Errorf("Expected agent mode, got %s", result.Mode)
	}
	if result.SnapshotCount != params.Days+1 {
		t.Errorf("Expected %d snapshots, got %d", params.Days+1, result.SnapshotCount)
	}
	if len(result.Snapshots) != result.SnapshotCount {
		t.Errorf("Snapshot count %d disagrees with retained snapshots %d", result.SnapshotCount, len(result.Snapshots))
	}
	if len(result.Series.Infected) != params.Days+1 {
		t.Errorf("Expected series of length %d, got %d", params.Days+1, len(result.Series.Infected))
	}
}

func TestRunnerRunAllPreservesOrder(t *testing.T) {
	runner, store := newTestRunner(t)

	store.Add(models.ModeCompartmental, referenceParams(), 0)
	store.Add(models.ModeAgent, referenceParams(), 7)
	store.Add(models.ModeCompartmental, referenceParams(), 0)

	results, err := runner.RunAll(context.Background())
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Index != i+1 {
			t.Errorf("Result %d has index %d, expected %d", i, res.Index, i+1)
		}
	}
}

func TestExecuteUnknownMode(t *testing.T) {
	if _, err := Execute(models.Mode("petri"), referenceParams(), 0); err == nil {
		t.Fatal("Expected an error for an unknown mode")
	}
}

func TestExecuteOneShot(t *testing.T) {
	result, err := Execute(models.ModeCompartmental, referenceParams(), 0)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.ScenarioID != "" {
		t.Errorf("One-shot runs should carry no scenario ID, got %q", result.ScenarioID)
	}
	if result.Summary.PeakInfected <= 0 {
		t.Errorf("Expected a positive peak, got %.3f", result.Summary.PeakInfected)
	}
}
