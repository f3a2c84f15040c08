// Package ui is the desktop backend of the Bitmask shell.
//
// It implements lifecycle.Platform on top of GTK4 (gotk4) and a
// StatusNotifier tray icon (fyne.io/systray):
//
//   - Platform: toolkit initialization, the GLib main loop, idle
//     dispatch and launching URIs in the default browser
//   - gtkWindow and pageView: top-level windows showing the local
//     application address, with header bar buttons for the bridge calls
//   - TrayIndicator: icon, tooltip and Show/Quit menu reflecting the
//     VPN status
//
// # Thread Safety
//
// GTK must only be touched from the thread that runs Platform.Run.
// Callbacks originating elsewhere (tray clicks, bus events) go through
// Platform.Schedule, which wraps glib.IdleAdd.
package ui
