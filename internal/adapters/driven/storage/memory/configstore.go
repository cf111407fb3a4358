package memory

import (
	"sync"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps saved settings in memory for tests.
type ConfigStore struct {
	mu     sync.RWMutex
	stored domain.StoredSettings
	saves  int
}

// NewConfigStore creates a store, optionally holding already saved settings.
func NewConfigStore(saved ...domain.StoredSettings) *ConfigStore {
	s := &ConfigStore{}
	if len(saved) > 0 {
		s.stored = saved[0].Clone()
	}
	return s
}

// Load returns a copy of the saved settings.
func (s *ConfigStore) Load() (domain.StoredSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stored.Clone(), nil
}

// Save replaces the saved settings with a copy of settings.
func (s *ConfigStore) Save(settings domain.StoredSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stored = settings.Clone()
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *ConfigStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
