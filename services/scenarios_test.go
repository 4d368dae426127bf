package services

import (
	"errors"
	"testing"

	"github.com/flufighter/flufighter/backend/models"
)

func TestScenarioStoreOrderAndIndexes(t *testing.T) {
	store := NewScenarioStore(10)

	for i := 0; i < 3; i++ {
		if _, err := store.Add(models.ModeCompartmental, referenceParams(), 0); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	scenarios := store.List()
	if len(scenarios) != 3 {
		t.Fatalf("Expected 3 scenarios, got %d", len(scenarios))
	}
	for i, sc := range scenarios {
		if sc.Index != i+1 {
			t.Errorf("Scenario %d has index %d, expected %d", i, sc.Index, i+1)
		}
		if sc.ID == "" {
			t.Errorf("Scenario %d has empty ID", i)
		}
	}
}

func TestScenarioStoreIndexesSurviveDeletion(t *testing.T) {
	store := NewScenarioStore(10)

	first, _ := store.Add(models.ModeCompartmental, referenceParams(), 0)
	store.Add(models.ModeCompartmental, referenceParams(), 0)

	if err := store.Delete(first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	third, _ := store.Add(models.ModeCompartmental, referenceParams(), 0)
	if third.Index != 3 {
		t.Errorf("Expected index 3 after a deletion, got %d", third.Index)
	}
}

func TestScenarioStoreAgentSeedAssigned(t *testing.T) {
	store := NewScenarioStore(10)

	sc, err := store.Add(models.ModeAgent, referenceParams(), 0)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if sc.Seed == 0 {
		t.Error("Expected a non-zero seed for an agent-mode scenario")
	}

	explicit, _ := store.Add(models.ModeAgent, referenceParams(), 99)
	if explicit.Seed != 99 {
		t.Errorf("Expected explicit seed 99 preserved, got %d", explicit.Seed)
	}

	compartmental, _ := store.Add(models.ModeCompartmental, referenceParams(), 99)
	if compartmental.Seed != 0 {
		t.Errorf("Expected no seed on a compartmental scenario, got %d", compartmental.Seed)
	}
}

func TestScenarioStoreLimit(t *testing.T) {
	store := NewScenarioStore(2)

	store.Add(models.ModeCompartmental, referenceParams(), 0)
	store.Add(models.ModeCompartmental, referenceParams(), 0)

	if _, err := store.Add(models.ModeCompartmental, referenceParams(), 0); !errors.Is(err, ErrStoreFull) {
		t.Errorf("Expected ErrStoreFull, got %v", err)
	}
}

func TestScenarioStoreGetAndClear(t *testing.T) {
	store := NewScenarioStore(10)

	sc, _ := store.Add(models.ModeAgent, referenceParams(), 0)

	got, err := store.Get(sc.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != sc.ID || got.Mode != models.ModeAgent {
		t.Errorf("Get returned the wrong scenario: %+v", got)
	}

	if _, err := store.Get("missing"); !errors.Is(err, ErrScenarioNotFound) {
		t.Errorf("Expected ErrScenarioNotFound, got %v", err)
	}

	store.Clear()
	if store.Count() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", store.Count())
	}

	// A cleared store behaves like a fresh session: indexes restart.
	fresh, _ := store.Add(models.ModeCompartmental, referenceParams(), 0)
	if fresh.Index != 1 {
		t.Errorf("Expected index 1 after Clear, got %d", fresh.Index)
	}
}
