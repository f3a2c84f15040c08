package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yllada/bitmask-shell/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != "http://localhost:7070/" {
		t.Errorf("BaseURL = %v, want http://localhost:7070/", cfg.BaseURL)
	}
	if cfg.LinkedAppURL != "http://localhost:9090/" {
		t.Errorf("LinkedAppURL = %v, want http://localhost:9090/", cfg.LinkedAppURL)
	}
	if cfg.TokenAttempts != 20 {
		t.Errorf("TokenAttempts = %v, want 20", cfg.TokenAttempts)
	}
	if cfg.TokenInterval != 100*time.Millisecond {
		t.Errorf("TokenInterval = %v, want 100ms", cfg.TokenInterval)
	}
	if !cfg.MinimizeToTray {
		t.Error("MinimizeToTray should be true by default")
	}
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.DaemonCommand != common.DefaultDaemonCommand {
		t.Errorf("DaemonCommand = %v, want %v", cfg.DaemonCommand, common.DefaultDaemonCommand)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("LoadFrom() should write defaults to %s: %v", path, err)
	}
}

func TestLoadFrom_RoundTripAndFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `daemon_command: /opt/bitmask/bitmaskd
daemon_args: ["--foreground"]
path_prefix: /tmp/prefix
base_url: http://localhost:7171/
linked_app_url: ""
token_attempts: 0
token_interval: 250ms
minimize_to_tray: false
show_notifications: false
theme: neon
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.DaemonCommand != "/opt/bitmask/bitmaskd" {
		t.Errorf("DaemonCommand = %v", cfg.DaemonCommand)
	}
	if len(cfg.DaemonArgs) != 1 || cfg.DaemonArgs[0] != "--foreground" {
		t.Errorf("DaemonArgs = %v", cfg.DaemonArgs)
	}
	if cfg.BaseURL != "http://localhost:7171/" {
		t.Errorf("BaseURL = %v", cfg.BaseURL)
	}
	if cfg.LinkedAppURL != common.DefaultLinkedAppURL {
		t.Errorf("empty LinkedAppURL should fall back, got %v", cfg.LinkedAppURL)
	}
	if cfg.TokenAttempts != common.TokenAttempts {
		t.Errorf("zero TokenAttempts should fall back, got %v", cfg.TokenAttempts)
	}
	if cfg.TokenInterval != 250*time.Millisecond {
		t.Errorf("TokenInterval = %v, want 250ms", cfg.TokenInterval)
	}
	if cfg.MinimizeToTray {
		t.Error("MinimizeToTray should be false")
	}
	if cfg.Theme != common.ThemeAuto {
		t.Errorf("invalid theme should fall back to auto, got %v", cfg.Theme)
	}

	prefix, err := cfg.ResolvePathPrefix()
	if err != nil || prefix != "/tmp/prefix" {
		t.Errorf("ResolvePathPrefix() = %v, %v", prefix, err)
	}
}

func TestLoadFrom_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("auto_reconnect: true\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, common.ErrConfigLoad) {
		t.Errorf("LoadFrom() error = %v, want ErrConfigLoad", err)
	}
}
