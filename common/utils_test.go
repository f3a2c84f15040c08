package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseVPNStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   VPNStatus
		wantOK bool
	}{
		{"off", VPNOff, true},
		{"on", VPNOn, true},
		{"starting", VPNStarting, true},
		{"stopping", VPNStopping, true},
		{"OFF", VPNOff, true},
		{"On", VPNOn, true},
		{"StArTiNg", VPNStarting, true},
		{"STOPPING", VPNStopping, true},
		{"failed", VPNOff, false},
		{"", VPNOff, false},
		{" on", VPNOff, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVPNStatus(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseVPNStatus(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseVPNStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVPNStatus_Tooltip(t *testing.T) {
	tests := []struct {
		status   VPNStatus
		expected string
	}{
		{VPNOff, "VPN: Off"},
		{VPNOn, "VPN: On"},
		{VPNStarting, "VPN: Starting"},
		{VPNStopping, "VPN: Stopping"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.Tooltip(); got != tt.expected {
				t.Errorf("Tooltip() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetPathPrefix_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetPathPrefix()
	if err != nil {
		t.Fatalf("GetPathPrefix() error = %v", err)
	}
	if got != dir {
		t.Errorf("GetPathPrefix() = %v, want %v", got, dir)
	}
	if want := filepath.Join(dir, "leap", "authtoken"); LeapPath(got, AuthTokenFileName) != want {
		t.Errorf("LeapPath() = %v, want %v", LeapPath(got, AuthTokenFileName), want)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pid")
	if err := os.WriteFile(file, []byte("1"), 0600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists() should return true for existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() should return false for a directory")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists() should return false for non-existing file")
	}
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("DEBUG", tt.value)
			if got := DebugEnabled(); got != tt.want {
				t.Errorf("DebugEnabled() with DEBUG=%q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
