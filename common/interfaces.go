// Package common provides shared constants, types, and utilities
// used across the Bitmask shell.
package common

import "strings"

// VPNStatus is the tray-facing phase of the VPN connection.
type VPNStatus int

const (
	VPNOff VPNStatus = iota
	VPNOn
	VPNStarting
	VPNStopping
)

// String returns the wire name of the status.
func (s VPNStatus) String() string {
	switch s {
	case VPNOff:
		return "off"
	case VPNOn:
		return "on"
	case VPNStarting:
		return "starting"
	case VPNStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Tooltip returns the text shown next to the tray icon.
func (s VPNStatus) Tooltip() string {
	switch s {
	case VPNOn:
		return "VPN: On"
	case VPNStarting:
		return "VPN: Starting"
	case VPNStopping:
		return "VPN: Stopping"
	default:
		return "VPN: Off"
	}
}

// ParseVPNStatus maps a status name from the event bus, in any letter case,
// to a VPNStatus. The second return value is false for names outside the set.
func ParseVPNStatus(name string) (VPNStatus, bool) {
	switch strings.ToLower(name) {
	case "off":
		return VPNOff, true
	case "on":
		return VPNOn, true
	case "starting":
		return VPNStarting, true
	case "stopping":
		return VPNStopping, true
	default:
		return VPNOff, false
	}
}

// StatusRenderer displays the current VPN status.
// Implementations must return quickly; they are called from the event bus goroutine.
type StatusRenderer interface {
	SetVPNStatus(status VPNStatus)
}

// Notifier defines the interface for sending notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
}
