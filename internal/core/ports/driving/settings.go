package driving

import "github.com/custodia-labs/sbml2biopax/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings: defaults, then the config file,
	// then environment overrides. The result is validated.
	Get() (*domain.ConversionSettings, error)

	// Set parses, validates and persists a single setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// Validate checks settings built or modified by the caller.
	Validate(settings *domain.ConversionSettings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.ConversionSettings
}
