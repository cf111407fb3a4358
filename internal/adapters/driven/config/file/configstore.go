package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultDirName is the config directory created under the user's home.
const DefaultDirName = ".sbml2biopax"

// FileName is the settings file inside the config directory.
const FileName = "config.toml"

// ConfigStore keeps saved settings in config.toml as [output] and [watch]
// tables. The file is re-read on every Load so edits made while watching
// are picked up by the next run.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// NewConfigStore creates the config directory if needed.
// If configDir is empty, defaults to ~/.sbml2biopax.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, DefaultDirName)
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, err
	}

	return &ConfigStore{filePath: filepath.Join(configDir, FileName)}, nil
}

// Load reads the saved settings. A missing file means nothing was saved.
func (s *ConfigStore) Load() (domain.StoredSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored domain.StoredSettings
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return stored, nil
	}
	if err != nil {
		return stored, err
	}

	if err := toml.Unmarshal(data, &stored); err != nil {
		return domain.StoredSettings{}, fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	return stored, nil
}

// Save replaces config.toml atomically, readable by the owner only.
func (s *ConfigStore) Save(settings domain.StoredSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	return renameio.WriteFile(s.filePath, data, 0o600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
