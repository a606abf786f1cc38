// ABOUTME: Fittrack configuration management with backend selection.
// ABOUTME: Handles settings, data paths, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fittrack/internal/storage"
)

// Config stores fittrack tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "memory".
	// The memory backend keeps nothing across runs; it exists for
	// scripted and throwaway sessions.
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts
	// fittrack.db here and the preference store lives in prefs/.
	// Supports ~ expansion. Defaults to ~/.local/share/fittrack.
	DataDir string `json:"data_dir,omitempty"`

	// ActivityFile points to a JSON file with daily activity summaries
	// used by the stats view. Empty means no activity feed.
	ActivityFile string `json:"activity_file,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetActivityFile returns the activity file path with ~ expanded, or
// empty when no feed is configured.
func (c *Config) GetActivityFile() string {
	return ExpandPath(c.ActivityFile)
}

// PrefsDir returns the directory for the preference store.
func (c *Config) PrefsDir() string {
	return filepath.Join(c.GetDataDir(), "prefs")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch c.GetBackend() {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "fittrack.db")
		return storage.Open(dbPath)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
