// Package common provides shared constants, types, and utilities
// used across the Bitmask shell.
package common

import (
	"os"
	"path/filepath"
	"strings"
)

// GetPathPrefix returns the base directory shared with bitmaskd.
// It honours XDG_CONFIG_HOME and falls back to ~/.config.
func GetPathPrefix() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", WrapError(err, "failed to locate config directory")
	}
	return dir, nil
}

// LeapPath joins name onto <prefix>/leap.
func LeapPath(prefix, name string) string {
	return filepath.Join(prefix, LeapDirName, name)
}

// GetConfigDir returns the path to the shell configuration directory.
// It creates the directory if it doesn't exist.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}

	configDir := filepath.Join(homeDir, ".config", ConfigDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}

	return configDir, nil
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DebugEnabled reports whether the DEBUG environment flag is set.
func DebugEnabled() bool {
	v := strings.TrimSpace(os.Getenv("DEBUG"))
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}
