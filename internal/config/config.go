// ABOUTME: Vael configuration management and store factory.
// ABOUTME: JSON config under XDG paths; data and coach URL are overridable.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harperreed/vael/internal/coach"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

// Config stores vael settings.
type Config struct {
	// DataDir is the root directory for the database.
	// Supports ~ expansion. Defaults to ~/.local/share/vael.
	DataDir string `json:"data_dir,omitempty"`

	// CoachURL is the coach backend base URL. Defaults to the local
	// development server; $VAEL_COACH_URL overrides an empty value.
	CoachURL string `json:"coach_url,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetCoachURL resolves the coach backend URL: config, then environment,
// then the built-in default.
func (c *Config) GetCoachURL() string {
	if c.CoachURL != "" {
		return c.CoachURL
	}
	if env := os.Getenv("VAEL_COACH_URL"); env != "" {
		return env
	}
	return coach.DefaultBaseURL
}

// DataDir returns the default data directory, honoring XDG_DATA_HOME.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "vael")
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

// OpenStore opens the engine on the configured data directory, creating it
// if needed and running any pending schema migrations.
func (c *Config) OpenStore(logger *log.Logger) (*store.Engine, error) {
	dataDir := c.GetDataDir()
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, err
	}
	return store.Open(store.Options{
		Path:   filepath.Join(dataDir, "vael.db"),
		Schema: schema.Versions(),
		Logger: logger,
	})
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "vael", "config.json")
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
