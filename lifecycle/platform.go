package lifecycle

import "github.com/yllada/bitmask-shell/common"

// Window is a top-level UI session window.
type Window interface {
	Show()
	Hide()
	// SetCloseHandler replaces the toolkit's default close behaviour.
	// The handler runs on the event loop when the user closes the window.
	SetCloseHandler(fn func())
	// Destroy tears the window down without calling the close handler.
	Destroy() error
}

// WebView shows a page inside a Window.
type WebView interface {
	Load(url string)
	Stop() error
}

// Tray is the status icon.
type Tray interface {
	common.StatusRenderer
	Visible() bool
	Stop()
}

// TrayActions are the tray menu callbacks.
type TrayActions struct {
	OnShow func()
	OnQuit func()
}

// Bridge is the host surface exposed to the page in the primary window.
type Bridge interface {
	// Shutdown stops the daemon and the UI.
	Shutdown()
	// OpenSystemBrowser opens url in the desktop's default browser.
	OpenSystemBrowser(url string)
	// OpenLinkedApp opens the mail app in a secondary window.
	OpenLinkedApp()
}

// Platform is the toolkit capability set the controller drives.
// All Build* calls and window methods run on the event loop.
type Platform interface {
	BuildWindow(title string) (Window, error)
	// BuildWebView loads url into w. bridge is nil for secondary sessions.
	BuildWebView(w Window, url string, bridge Bridge) (WebView, error)
	BuildTray(actions TrayActions) (Tray, error)

	// Schedule runs fn on the next event loop iteration. Safe from any goroutine.
	Schedule(fn func())
	// Run blocks in the event loop until Quit.
	Run() error
	Quit()
	// Release frees process-wide toolkit resources.
	Release() error

	OpenURL(url string) error
	common.Notifier
}
