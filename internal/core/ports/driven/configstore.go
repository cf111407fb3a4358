package driven

import "github.com/custodia-labs/sbml2biopax/internal/core/domain"

// ConfigStore persists the settings a user saved explicitly.
type ConfigStore interface {
	// Load returns the saved settings. A store with nothing saved yet
	// returns empty settings and no error.
	Load() (domain.StoredSettings, error)

	// Save replaces the saved settings.
	Save(settings domain.StoredSettings) error

	// Path returns the backing file path, or ":memory:" for in-memory stores.
	Path() string
}
