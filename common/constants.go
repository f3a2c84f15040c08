// Package common provides shared constants, types, and utilities
// used across the Bitmask shell.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "se.leap.bitmask.shell"
	// AppName is the display name of the application.
	AppName = "Bitmask"
	// ConfigDirName is the name of the shell's own configuration directory.
	ConfigDirName = "bitmask-shell"
	// LeapDirName is the directory under the path prefix shared with bitmaskd.
	LeapDirName = "leap"
)

// File names used by the application.
const (
	ConfigFileName    = "config.yaml"
	LogFileName       = "bitmask-shell.log"
	PIDFileName       = "pid"
	AuthTokenFileName = "authtoken"
	LockFileName      = "shell.lock"
)

// Local endpoints served by the daemon.
const (
	// DefaultBaseURL is the daemon's web UI. The readiness token is appended as a fragment.
	DefaultBaseURL = "http://localhost:7070/"
	// DefaultLinkedAppURL is the secondary mail app, opened without a token.
	DefaultLinkedAppURL = "http://localhost:9090/"
	// DefaultDaemonCommand is looked up on PATH when no command is configured.
	DefaultDaemonCommand = "bitmaskd"
)

// Readiness handshake bounds.
const (
	// TokenAttempts is how many times the token file is checked before giving up.
	TokenAttempts = 20
	// TokenInterval is the pause between two token checks.
	TokenInterval = 100 * time.Millisecond
)

// Event bus names.
const (
	// VPNStatusChangedTopic is the catalog name of the VPN status event.
	VPNStatusChangedTopic = "VPN_STATUS_CHANGED"
	// EventsInterface is the D-Bus interface the daemon emits events on.
	EventsInterface = "org.leap.bitmask.Events"
	// EventsPath is the D-Bus object path of the event emitter.
	EventsPath = "/org/leap/bitmask/Events"
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 1024
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 700
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
