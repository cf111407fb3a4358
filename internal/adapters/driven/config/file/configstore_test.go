package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

func newStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), store.Path())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NoFileExists(t, store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sbml2biopax", "config.toml"), store.Path())
	assert.DirExists(t, filepath.Join(home, ".sbml2biopax"))
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	store, err := NewConfigStore(filepath.Join(blocker, "config"))

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Load_MissingFile(t *testing.T) {
	stored, err := newStore(t).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StoredSettings{}, stored)
}

func TestConfigStore_Load_Tables(t *testing.T) {
	store := newStore(t)
	content := `[output]
indent = 0
location_style = "fragment"
xml_declaration = false

[watch]
debounce_ms = 75
`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o600))

	stored, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StoredSettings{
		Output: domain.StoredOutput{
			Indent:         ptr(0),
			LocationStyle:  ptr("fragment"),
			XMLDeclaration: ptr(false),
		},
		Watch: domain.StoredWatch{DebounceMillis: ptr(75)},
	}, stored)
}

func TestConfigStore_Load_PartialTable(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("[watch]\ndebounce_ms = 10\n"), 0o600))

	stored, err := store.Load()

	require.NoError(t, err)
	assert.Nil(t, stored.Output.Indent)
	assert.Nil(t, stored.Output.LocationStyle)
	assert.Equal(t, ptr(10), stored.Watch.DebounceMillis)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("[output\nindent = "), 0o600))

	_, err := store.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), store.Path())
}

func TestConfigStore_Load_WrongType(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("[output]\nindent = \"wide\"\n"), 0o600))

	_, err := store.Load()

	assert.Error(t, err)
}

func TestConfigStore_Save_WritesTables(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(domain.StoredSettings{
		Output: domain.StoredOutput{Indent: ptr(4), LocationStyle: ptr("fragment")},
		Watch:  domain.StoredWatch{DebounceMillis: ptr(100)},
	}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[output]")
	assert.Contains(t, string(data), "[watch]")
	assert.NotContains(t, string(data), "xml_declaration")

	var tables map[string]map[string]any
	require.NoError(t, toml.Unmarshal(data, &tables))
	assert.Equal(t, map[string]map[string]any{
		"output": {"indent": int64(4), "location_style": "fragment"},
		"watch":  {"debounce_ms": int64(100)},
	}, tables)
}

func TestConfigStore_Save_ExplicitZeroAndFalse(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(domain.StoredSettings{
		Output: domain.StoredOutput{Indent: ptr(0), XMLDeclaration: ptr(false)},
	}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "indent = 0")
	assert.Contains(t, string(data), "xml_declaration = false")
}

func TestConfigStore_Save_OwnerOnly(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(domain.StoredSettings{Watch: domain.StoredWatch{DebounceMillis: ptr(1)}}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_Save_ReplacesFile(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(domain.StoredSettings{Output: domain.StoredOutput{Indent: ptr(4)}}))
	require.NoError(t, store.Save(domain.StoredSettings{Output: domain.StoredOutput{LocationStyle: ptr("mixed")}}))

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored.Output.Indent)
	assert.Equal(t, ptr("mixed"), stored.Output.LocationStyle)

	// The atomic rename leaves no temporary files behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}

func TestConfigStore_Save_TargetIsDirectory(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.Mkdir(store.Path(), 0o700))

	err := store.Save(domain.StoredSettings{Output: domain.StoredOutput{Indent: ptr(2)}})

	assert.Error(t, err)
}

func TestConfigStore_RoundTripAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	saved := domain.StoredSettings{
		Output: domain.StoredOutput{
			Indent:         ptr(8),
			LocationStyle:  ptr("fragment"),
			XMLDeclaration: ptr(true),
		},
		Watch: domain.StoredWatch{DebounceMillis: ptr(0)},
	}

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(saved))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)
	loaded, err := second.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestConfigStore_LoadSeesExternalEdits(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Save(domain.StoredSettings{Output: domain.StoredOutput{Indent: ptr(2)}}))

	require.NoError(t, os.WriteFile(store.Path(), []byte("[output]\nindent = 6\n"), 0o600))

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, ptr(6), stored.Output.Indent)
}

func TestConfigStore_ConcurrentSaveAndLoad(t *testing.T) {
	store := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, store.Save(domain.StoredSettings{Watch: domain.StoredWatch{DebounceMillis: ptr(n)}}))
		}(i)
		go func() {
			defer wg.Done()
			_, err := store.Load()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, stored.Watch.DebounceMillis)
	assert.GreaterOrEqual(t, *stored.Watch.DebounceMillis, 0)
}
