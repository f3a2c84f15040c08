// Package config provides configuration management for the Bitmask shell.
// It handles loading, saving, and resolving the daemon launch settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yllada/bitmask-shell/common"
)

// Config represents the shell configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// DaemonCommand is the daemon executable. Relative names are resolved on PATH.
	DaemonCommand string `yaml:"daemon_command"`
	// DaemonArgs are extra arguments passed to the daemon.
	DaemonArgs []string `yaml:"daemon_args,omitempty"`
	// PathPrefix is the directory holding leap/pid and leap/authtoken.
	// Empty means the XDG config directory.
	PathPrefix string `yaml:"path_prefix,omitempty"`
	// BaseURL is the daemon's web UI.
	BaseURL string `yaml:"base_url"`
	// LinkedAppURL is opened in the secondary window.
	LinkedAppURL string `yaml:"linked_app_url"`
	// TokenAttempts bounds the readiness wait.
	TokenAttempts int `yaml:"token_attempts"`
	// TokenInterval is the pause between token checks.
	TokenInterval time.Duration `yaml:"token_interval"`
	// MinimizeToTray hides the window on close instead of quitting.
	MinimizeToTray bool `yaml:"minimize_to_tray"`
	// ShowNotifications enables the minimize-to-tray notice.
	ShowNotifications bool `yaml:"show_notifications"`
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DaemonCommand:     common.DefaultDaemonCommand,
		BaseURL:           common.DefaultBaseURL,
		LinkedAppURL:      common.DefaultLinkedAppURL,
		TokenAttempts:     common.TokenAttempts,
		TokenInterval:     common.TokenInterval,
		MinimizeToTray:    true,
		ShowNotifications: true,
		Theme:             common.ThemeAuto,
	}
}

// Load loads the configuration from the default config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from path, writing defaults there when
// the file is missing.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.SaveTo(path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	cfg := DefaultConfig()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: error parsing configuration: %v", common.ErrConfigLoad, err)
	}

	cfg.validate()
	return cfg, nil
}

// validate replaces out-of-range values with defaults.
func (c *Config) validate() {
	def := DefaultConfig()

	switch c.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		c.Theme = def.Theme
	}
	if c.DaemonCommand == "" {
		c.DaemonCommand = def.DaemonCommand
	}
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.LinkedAppURL == "" {
		c.LinkedAppURL = def.LinkedAppURL
	}
	if c.TokenAttempts <= 0 {
		c.TokenAttempts = def.TokenAttempts
	}
	if c.TokenInterval <= 0 {
		c.TokenInterval = def.TokenInterval
	}
}

// Save saves the configuration to the default file.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: error serializing configuration: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}
	return nil
}

// ResolvePathPrefix returns PathPrefix or the platform default.
func (c *Config) ResolvePathPrefix() (string, error) {
	if c.PathPrefix != "" {
		return c.PathPrefix, nil
	}
	return common.GetPathPrefix()
}

func getConfigPath() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}
