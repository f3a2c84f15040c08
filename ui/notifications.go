package ui

import (
	"fmt"
	"os/exec"

	"github.com/yllada/bitmask-shell/common"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationWarning
	NotificationError
)

// Notification represents a system notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

// notifyArgs builds the notify-send argument list for n.
func notifyArgs(n Notification) []string {
	icon := n.Icon
	urgency := "low"
	switch n.Type {
	case NotificationWarning:
		if icon == "" {
			icon = "dialog-warning"
		}
		urgency = "normal"
	case NotificationError:
		if icon == "" {
			icon = "dialog-error"
		}
		urgency = "critical"
	default:
		if icon == "" {
			icon = "bitmask"
		}
	}

	return []string{
		"--app-name=" + common.AppName,
		"--icon=" + icon,
		"--urgency=" + urgency,
		n.Title,
		n.Message,
	}
}

// ShowNotification displays a system notification using notify-send
func ShowNotification(n Notification) error {
	cmd := exec.Command("notify-send", notifyArgs(n)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}
