// Package config persists the user-managed list of extra search roots.
// The locator never touches this package; it only receives the path list
// as a parameter.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the persisted application state.
type Config struct {
	SearchPaths []string     `json:"search_paths"` // Extra directories scanned for JVM installations
	Update      UpdateConfig `json:"update"`       // Self-update settings
	configPath  string
}

// UpdateConfig holds settings for the self-update feature.
type UpdateConfig struct {
	Enabled     bool      `json:"enabled"`      // Master toggle for update functionality
	LastCheck   time.Time `json:"last_check"`   // Last time an update check ran
	SkipVersion string    `json:"skip_version"` // Version the user chose to skip
}

// Load reads the configuration from the user's config directory. A missing
// file yields an empty config, not an error.
func Load() (*Config, error) {
	return loadFrom(configFilePath())
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{
		SearchPaths: make([]string, 0),
		Update:      UpdateConfig{Enabled: true},
		configPath:  path,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Strip a UTF-8 BOM; files edited with PowerShell tend to carry one.
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.SearchPaths = sanitizePaths(cfg.SearchPaths)
	cfg.configPath = path
	return cfg, nil
}

// sanitizePaths drops empty entries and case-insensitive duplicates while
// preserving order.
func sanitizePaths(paths []string) []string {
	cleaned := make([]string, 0, len(paths))
	seen := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(strings.TrimSpace(p))
		if p == "" || p == "." {
			continue
		}
		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, p)
	}
	return cleaned
}

// Save writes the configuration to disk, creating the directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.configPath, data, 0644)
}

// AddSearchPath registers an extra directory to scan for JVM
// installations. Duplicates are ignored.
func (c *Config) AddSearchPath(path string) {
	path = filepath.Clean(strings.TrimSpace(path))
	if path == "" || path == "." {
		return
	}
	if c.HasSearchPath(path) {
		return
	}
	c.SearchPaths = append(c.SearchPaths, path)
}

// RemoveSearchPath removes a registered search path.
func (c *Config) RemoveSearchPath(path string) {
	path = filepath.Clean(path)
	for i, p := range c.SearchPaths {
		if strings.EqualFold(p, path) {
			c.SearchPaths = append(c.SearchPaths[:i], c.SearchPaths[i+1:]...)
			return
		}
	}
}

// HasSearchPath checks whether a path is already registered.
func (c *Config) HasSearchPath(path string) bool {
	path = filepath.Clean(path)
	for _, p := range c.SearchPaths {
		if strings.EqualFold(p, path) {
			return true
		}
	}
	return false
}

// configFilePath returns the configuration file location, following the
// XDG Base Directory convention.
func configFilePath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "jvmfind", "config.json")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "jvmfind", "config.json")
}
