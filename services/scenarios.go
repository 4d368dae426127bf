// ABOUTME: Session-scoped scenario store, insertion-ordered and in-memory only.
// ABOUTME: Scenarios live for the process lifetime; nothing is persisted.

package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flufighter/flufighter/backend/models"
)

var (
	// ErrScenarioNotFound is returned for lookups of unknown scenario IDs.
	ErrScenarioNotFound = errors.New("scenario not found")
	// ErrStoreFull is returned when the scenario limit has been reached.
	ErrStoreFull = errors.New("scenario limit reached")
)

// ScenarioStore holds the session's added scenarios in insertion order.
// Indexes are 1-based and never reused while the session lives, so
// "Simulation 3" keeps its label even after earlier entries are removed.
type ScenarioStore struct {
	mu        sync.RWMutex
	scenarios []models.Scenario
	nextIndex int
	limit     int
}

// NewScenarioStore creates a store capped at limit scenarios.
func NewScenarioStore(limit int) *ScenarioStore {
	return &ScenarioStore{limit: limit}
}

// Add stores a new scenario and returns it. A zero seed for agent-mode
// scenarios is replaced with a time-based one at creation, so later
// reruns of the same scenario reproduce the same outbreak.
func (s *ScenarioStore) Add(mode models.Mode, params models.SimulationParameters, seed int64) (models.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.scenarios) >= s.limit {
		return models.Scenario{}, ErrStoreFull
	}

	if mode == models.ModeAgent && seed == 0 {
		seed = time.Now().UnixNano()
	}
	if mode == models.ModeCompartmental {
		seed = 0
	}

	s.nextIndex++
	scenario := models.Scenario{
		ID:        uuid.NewString(),
		Index:     s.nextIndex,
		Mode:      mode,
		Params:    params,
		Seed:      seed,
		CreatedAt: time.Now(),
	}
	s.scenarios = append(s.scenarios, scenario)
	return scenario, nil
}

// Get returns the scenario with the given ID.
func (s *ScenarioStore) Get(id string) (models.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sc := range s.scenarios {
		if sc.ID == id {
			return sc, nil
		}
	}
	return models.Scenario{}, ErrScenarioNotFound
}

// List returns all scenarios in insertion order.
func (s *ScenarioStore) List() []models.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// Delete removes one scenario by ID.
func (s *ScenarioStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sc := range s.scenarios {
		if sc.ID == id {
			s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
			return nil
		}
	}
	return ErrScenarioNotFound
}

// Clear removes every scenario and resets the index counter, matching a
// fresh session.
func (s *ScenarioStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios = nil
	s.nextIndex = 0
}

// Count returns the number of stored scenarios.
func (s *ScenarioStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.scenarios)
}
