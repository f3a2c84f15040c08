package ui

import (
	"sync"

	"fyne.io/systray"

	"github.com/yllada/bitmask-shell/common"
	"github.com/yllada/bitmask-shell/lifecycle"
)

// Pre-generated icons for performance.
var (
	iconOn   = GenerateOnIcon()
	iconOff  = GenerateOffIcon()
	iconWait = GenerateWaitIcon()
)

// iconFor returns the tray icon for a VPN status.
func iconFor(s common.VPNStatus) []byte {
	switch s {
	case common.VPNOn:
		return iconOn
	case common.VPNStarting, common.VPNStopping:
		return iconWait
	default:
		return iconOff
	}
}

// statusTitle is the disabled first menu entry describing the status.
func statusTitle(s common.VPNStatus) string {
	switch s {
	case common.VPNOn:
		return "●  VPN is on"
	case common.VPNStarting:
		return "⟳  VPN is starting"
	case common.VPNStopping:
		return "⟳  VPN is stopping"
	default:
		return "○  VPN is off"
	}
}

// TrayIndicator manages the system tray icon and menu.
type TrayIndicator struct {
	actions  lifecycle.TrayActions
	schedule func(func())

	mu         sync.Mutex
	status     common.VPNStatus
	ready      bool
	visible    bool
	statusItem *systray.MenuItem
	stopOnce   sync.Once
}

// NewTrayIndicator creates a tray indicator. Menu clicks are delivered
// through schedule so the actions run on the UI thread.
func NewTrayIndicator(actions lifecycle.TrayActions, schedule func(func())) *TrayIndicator {
	return &TrayIndicator{
		actions:  actions,
		schedule: schedule,
		status:   common.VPNOff,
	}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayIndicator) onReady() {
	t.mu.Lock()
	status := t.status
	t.mu.Unlock()

	systray.SetIcon(iconFor(status))
	systray.SetTitle(common.AppName)
	systray.SetTooltip(status.Tooltip())

	statusItem := systray.AddMenuItem(statusTitle(status), "Current VPN status")
	statusItem.Disable()

	systray.AddSeparator()

	showItem := systray.AddMenuItem("Show "+common.AppName, "Show main window")
	go func() {
		for range showItem.ClickedCh {
			t.dispatch(t.actions.OnShow)
		}
	}()

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Stop Bitmask and quit")
	go func() {
		for range quitItem.ClickedCh {
			t.dispatch(t.actions.OnQuit)
		}
	}()

	t.mu.Lock()
	t.statusItem = statusItem
	t.ready = true
	t.visible = true
	// A status may have arrived while the menu was being built.
	if t.status != status {
		t.apply(t.status)
	}
	t.mu.Unlock()

	common.LogInfo("Tray indicator ready")
}

func (t *TrayIndicator) onExit() {
	t.mu.Lock()
	t.visible = false
	t.ready = false
	t.mu.Unlock()
	common.LogInfo("Tray indicator cleanup completed")
}

func (t *TrayIndicator) dispatch(fn func()) {
	if fn == nil {
		return
	}
	t.schedule(fn)
}

// SetVPNStatus updates icon, tooltip and status entry.
func (t *TrayIndicator) SetVPNStatus(s common.VPNStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = s
	if t.ready {
		t.apply(s)
	}
}

// apply must be called with t.mu held.
func (t *TrayIndicator) apply(s common.VPNStatus) {
	systray.SetIcon(iconFor(s))
	systray.SetTooltip(s.Tooltip())
	if t.statusItem != nil {
		t.statusItem.SetTitle(statusTitle(s))
	}
}

// Visible reports whether the tray icon is currently shown.
func (t *TrayIndicator) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Stop removes the tray icon.
func (t *TrayIndicator) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		t.visible = false
		t.mu.Unlock()
		systray.Quit()
	})
}
