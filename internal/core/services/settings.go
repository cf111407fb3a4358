package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyIndent         = "output.indent"
	KeyLocationStyle  = "output.location_style"
	KeyXMLDeclaration = "output.xml_declaration"
	KeyWatchDebounce  = "watch.debounce_ms"
)

var settingKeys = []string{KeyIndent, KeyLocationStyle, KeyXMLDeclaration, KeyWatchDebounce}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Get retrieves current application settings. Stored values override
// defaults and SBML2BIOPAX_* environment variables override both.
func (s *SettingsService) Get() (*domain.ConversionSettings, error) {
	stored, err := s.configStore.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	settings := domain.DefaultConversionSettings()
	stored.Apply(&settings)

	if err := cleanenv.ReadEnv(&settings); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := s.Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Set parses value for key, checks the saved settings with the change
// applied and persists them. The environment is not consulted, so an
// override cannot mask an invalid saved value.
func (s *SettingsService) Set(key, value string) error {
	stored, err := s.configStore.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	switch key {
	case KeyIndent:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		stored.Output.Indent = &n
	case KeyLocationStyle:
		if !domain.LocationStyle(value).IsValid() {
			return fmt.Errorf("%w: invalid location style: %s", domain.ErrInvalidInput, value)
		}
		stored.Output.LocationStyle = &value
	case KeyXMLDeclaration:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		stored.Output.XMLDeclaration = &b
	case KeyWatchDebounce:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		stored.Watch.DebounceMillis = &n
	default:
		return fmt.Errorf("%w: unknown setting %q (known: %s)", domain.ErrInvalidInput, key, strings.Join(settingKeys, ", "))
	}

	next := domain.DefaultConversionSettings()
	stored.Apply(&next)
	if err := s.Validate(&next); err != nil {
		return err
	}

	if err := s.configStore.Save(stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// Validate checks the settings against their field constraints.
func (s *SettingsService) Validate(settings *domain.ConversionSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := s.validate.Struct(settings); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.ConversionSettings {
	return domain.DefaultConversionSettings()
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
