package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConversionSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(domain.StoredSettings{
		Output: domain.StoredOutput{
			Indent:         ptr(4),
			LocationStyle:  ptr("fragment"),
			XMLDeclaration: ptr(false),
		},
		Watch: domain.StoredWatch{DebounceMillis: ptr(50)},
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 4, settings.Output.Indent)
	assert.Equal(t, domain.LocationStyleFragment, settings.Output.LocationStyle)
	assert.False(t, settings.Output.XMLDeclaration)
	assert.Equal(t, 50, settings.Watch.DebounceMillis)
}

func TestSettingsService_Get_StoredZeroIsKept(t *testing.T) {
	store := memory.NewConfigStore(domain.StoredSettings{
		Output: domain.StoredOutput{Indent: ptr(0)},
		Watch:  domain.StoredWatch{DebounceMillis: ptr(0)},
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 0, settings.Output.Indent)
	assert.Equal(t, 0, settings.Watch.DebounceMillis)
}

func TestSettingsService_Get_InvalidStyleReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore(domain.StoredSettings{
		Output: domain.StoredOutput{LocationStyle: ptr("sideways")},
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.LocationStyleMixed, settings.Output.LocationStyle)
}

func TestSettingsService_Get_StoredOutOfRange(t *testing.T) {
	store := memory.NewConfigStore(domain.StoredSettings{Output: domain.StoredOutput{Indent: ptr(20)}})
	service := NewSettingsService(store)

	_, err := service.Get()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "indent must be at most 8")
}

func TestSettingsService_Get_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SBML2BIOPAX_INDENT", "6")
	t.Setenv("SBML2BIOPAX_LOCATION_STYLE", "fragment")
	t.Setenv("SBML2BIOPAX_XML_DECLARATION", "false")
	t.Setenv("SBML2BIOPAX_WATCH_DEBOUNCE_MS", "5")

	store := memory.NewConfigStore(domain.StoredSettings{Output: domain.StoredOutput{Indent: ptr(4)}})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 6, settings.Output.Indent)
	assert.Equal(t, domain.LocationStyleFragment, settings.Output.LocationStyle)
	assert.False(t, settings.Output.XMLDeclaration)
	assert.Equal(t, 5, settings.Watch.DebounceMillis)
}

func TestSettingsService_Get_InvalidEnvironment(t *testing.T) {
	t.Setenv("SBML2BIOPAX_INDENT", "wide")

	_, err := NewSettingsService(memory.NewConfigStore()).Get()

	assert.Error(t, err)
}

func TestSettingsService_Get_EnvironmentValidated(t *testing.T) {
	t.Setenv("SBML2BIOPAX_LOCATION_STYLE", "sideways")

	_, err := NewSettingsService(memory.NewConfigStore()).Get()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: mixed fragment")
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyIndent, "0"))
	require.NoError(t, service.Set(KeyLocationStyle, "fragment"))
	require.NoError(t, service.Set(KeyXMLDeclaration, "false"))
	require.NoError(t, service.Set(KeyWatchDebounce, "1000"))

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.StoredSettings{
		Output: domain.StoredOutput{
			Indent:         ptr(0),
			LocationStyle:  ptr("fragment"),
			XMLDeclaration: ptr(false),
		},
		Watch: domain.StoredWatch{DebounceMillis: ptr(1000)},
	}, stored)
	assert.Equal(t, 4, store.Saves())

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ConversionSettings{
		Output: domain.OutputSettings{Indent: 0, LocationStyle: domain.LocationStyleFragment},
		Watch:  domain.WatchSettings{DebounceMillis: 1000},
	}, *settings)
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "output.colour", "red"},
		{"indent not a number", KeyIndent, "two"},
		{"indent too large", KeyIndent, "9"},
		{"indent negative", KeyIndent, "-1"},
		{"bad style", KeyLocationStyle, "bare"},
		{"bad bool", KeyXMLDeclaration, "maybe"},
		{"debounce not a number", KeyWatchDebounce, "fast"},
		{"debounce negative", KeyWatchDebounce, "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Zero(t, store.Saves())
			stored, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, domain.StoredSettings{}, stored)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	assert.Equal(t, []string{KeyIndent, KeyLocationStyle, KeyXMLDeclaration, KeyWatchDebounce}, keys)

	keys[0] = "changed"
	assert.Equal(t, KeyIndent, service.Keys()[0])
}

func TestSettingsService_Validate(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	defaults := service.GetDefaults()
	assert.NoError(t, service.Validate(&defaults))

	assert.ErrorIs(t, service.Validate(nil), domain.ErrInvalidInput)

	bad := service.GetDefaults()
	bad.Output.LocationStyle = ""
	err := service.Validate(&bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locationstyle is required")
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultConversionSettings(), service.GetDefaults())
}

func TestSettingsService_Set_KeepsOtherSavedValues(t *testing.T) {
	store := memory.NewConfigStore(domain.StoredSettings{Watch: domain.StoredWatch{DebounceMillis: ptr(25)}})
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyIndent, "4"))

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, ptr(4), stored.Output.Indent)
	assert.Equal(t, ptr(25), stored.Watch.DebounceMillis)
	assert.Nil(t, stored.Output.LocationStyle)
}

func TestSettingsService_Set_IgnoresEnvironment(t *testing.T) {
	t.Setenv("SBML2BIOPAX_INDENT", "6")
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyXMLDeclaration, "false"))

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored.Output.Indent)
	assert.Equal(t, ptr(false), stored.Output.XMLDeclaration)
}
