// Package config persists tool settings in a TOML file under the lineq
// config directory (~/.lineq by default).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDirName is the dot-directory under the user home holding the
// config file and, unless overridden, the history database.
const DefaultDirName = ".lineq"

// configFile is the file name inside the config directory.
const configFile = "config.toml"

// ErrInvalidVariable is returned when the configured variable is not a
// single unicode letter.
var ErrInvalidVariable = errors.New("config: variable must be a single letter")

// Config is the persisted tool configuration.
type Config struct {
	// Variable is the letter denoting the unknown, "x" by default.
	Variable string `toml:"variable"`

	// History controls the persisted solve log.
	History HistoryConfig `toml:"history"`
}

// HistoryConfig holds the persisted-history settings.
type HistoryConfig struct {
	// Enabled toggles recording of solved equations.
	Enabled bool `toml:"enabled"`

	// Dir overrides the directory holding the history database; empty
	// means the config directory itself.
	Dir string `toml:"dir"`
}

// Default returns the configuration assumed when no file exists.
func Default() Config {
	return Config{
		Variable: "x",
		History:  HistoryConfig{Enabled: true},
	}
}

// VariableRune returns the configured variable as a rune.
func (c Config) VariableRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Variable)
	return r
}

// validate rejects configurations the solver could not honor.
func (c Config) validate() error {
	r, size := utf8.DecodeRuneInString(c.Variable)
	if size == 0 || size != len(c.Variable) || !unicode.IsLetter(r) {
		return fmt.Errorf("%w: got %q", ErrInvalidVariable, c.Variable)
	}
	return nil
}

// Store is a file-based TOML configuration store. Concurrent readers
// and writers are safe; writes persist immediately.
type Store struct {
	mu       sync.RWMutex
	dir      string
	filePath string
	cfg      Config
}

// NewStore creates a config store rooted at configDir.
// If configDir is empty, defaults to ~/.lineq/config.toml.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, DefaultDirName)
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &Store{
		dir:      configDir,
		filePath: filepath.Join(configDir, configFile),
		cfg:      Default(),
	}

	// Load existing data if the file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetVariable updates the variable letter and persists immediately.
func (s *Store) SetVariable(variable string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.cfg
	updated.Variable = variable
	if err := updated.validate(); err != nil {
		return err
	}
	s.cfg = updated
	return s.save()
}

// SetHistoryEnabled toggles history recording and persists immediately.
func (s *Store) SetHistoryEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.History.Enabled = enabled
	return s.save()
}

// Save persists the current configuration to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the TOML file (caller must hold lock).
func (s *Store) save() error {
	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads the configuration from disk, applying defaults first so
// absent keys keep their default values.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet, keep defaults
			s.cfg = Default()
			return nil
		}
		return err
	}

	loaded := Default()
	if err = toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	if err = loaded.validate(); err != nil {
		return err
	}

	s.cfg = loaded
	return nil
}

// Path returns the location of the config file.
func (s *Store) Path() string {
	return s.filePath
}

// Dir returns the config directory.
func (s *Store) Dir() string {
	return s.dir
}

// HistoryDir resolves the directory holding the history database.
func (s *Store) HistoryDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cfg.History.Dir != "" {
		return s.cfg.History.Dir
	}
	return s.dir
}
