package ui

import (
	"fmt"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/bitmask-shell/common"
	"github.com/yllada/bitmask-shell/lifecycle"
)

// Platform is the GTK4 implementation of lifecycle.Platform.
// It must be created and run on the main OS thread.
type Platform struct {
	theme string

	initOnce sync.Once
	initErr  error
	loop     *glib.MainLoop

	mu      sync.Mutex
	windows map[*gtkWindow]struct{}
}

// NewPlatform creates a GTK platform. The toolkit is initialized lazily on
// the first Build call so that a failed daemon launch never opens a display.
func NewPlatform(theme string) *Platform {
	return &Platform{
		theme:   theme,
		windows: make(map[*gtkWindow]struct{}),
	}
}

func (p *Platform) init() error {
	p.initOnce.Do(func() {
		if !gtk.InitCheck() {
			p.initErr = fmt.Errorf("%w: cannot open display", common.ErrPlatformMissing)
			return
		}
		p.loop = glib.NewMainLoop(nil, false)
		p.applyTheme()
	})
	return p.initErr
}

// applyTheme applies the configured theme.
// Supported values: "auto" (system default), "light", "dark"
func (p *Platform) applyTheme() {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}

	switch p.theme {
	case common.ThemeLight:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", false)
	case common.ThemeDark:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", true)
	}
}

// BuildWindow implements lifecycle.Platform.
func (p *Platform) BuildWindow(title string) (lifecycle.Window, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	w := newWindow(title, p.forget)

	p.mu.Lock()
	p.windows[w] = struct{}{}
	p.mu.Unlock()
	return w, nil
}

func (p *Platform) forget(w *gtkWindow) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.windows, w)
}

// BuildWebView implements lifecycle.Platform.
func (p *Platform) BuildWebView(w lifecycle.Window, url string, bridge lifecycle.Bridge) (lifecycle.WebView, error) {
	gw, ok := w.(*gtkWindow)
	if !ok {
		return nil, fmt.Errorf("window %T was not built by this platform", w)
	}
	return newPageView(p, gw, url, bridge), nil
}

// BuildTray implements lifecycle.Platform.
func (p *Platform) BuildTray(actions lifecycle.TrayActions) (lifecycle.Tray, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	t := NewTrayIndicator(actions, p.Schedule)
	go t.Run()
	return t, nil
}

// Schedule implements lifecycle.Platform.
func (p *Platform) Schedule(fn func()) {
	glib.IdleAdd(fn)
}

// Run implements lifecycle.Platform.
func (p *Platform) Run() error {
	if err := p.init(); err != nil {
		return err
	}
	p.loop.Run()
	return nil
}

// Quit implements lifecycle.Platform.
func (p *Platform) Quit() {
	if p.loop != nil {
		p.loop.Quit()
	}
}

// Release destroys every window still open.
func (p *Platform) Release() error {
	p.mu.Lock()
	left := make([]*gtkWindow, 0, len(p.windows))
	for w := range p.windows {
		left = append(left, w)
	}
	p.mu.Unlock()

	for _, w := range left {
		common.LogDebug("Releasing leftover window %q", w.title)
		if err := w.Destroy(); err != nil {
			return err
		}
	}
	return nil
}

// OpenURL implements lifecycle.Platform.
func (p *Platform) OpenURL(url string) error {
	if err := gio.AppInfoLaunchDefaultForURI(url, nil); err != nil {
		return fmt.Errorf("launch default handler for %s: %w", url, err)
	}
	return nil
}

// Notify implements lifecycle.Platform.
func (p *Platform) Notify(title, message string) error {
	return ShowNotification(Notification{
		Title:   title,
		Message: message,
		Type:    NotificationInfo,
	})
}
