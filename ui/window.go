package ui

import (
	"strings"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/bitmask-shell/common"
	"github.com/yllada/bitmask-shell/lifecycle"
)

// gtkWindow adapts gtk.Window to lifecycle.Window.
type gtkWindow struct {
	title   string
	win     *gtk.Window
	header  *gtk.HeaderBar
	forget  func(*gtkWindow)
	onClose func()
	once    sync.Once
}

func newWindow(title string, forget func(*gtkWindow)) *gtkWindow {
	w := &gtkWindow{
		title:  title,
		win:    gtk.NewWindow(),
		header: gtk.NewHeaderBar(),
		forget: forget,
	}
	w.win.SetTitle(title)
	w.win.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	w.win.SetIconName("bitmask")
	w.win.SetTitlebar(w.header)

	// Returning true keeps GTK from destroying the window; the
	// controller decides between hiding and shutting down.
	w.win.ConnectCloseRequest(func() bool {
		if w.onClose == nil {
			return false
		}
		w.onClose()
		return true
	})
	return w
}

func (w *gtkWindow) Show() {
	w.win.Present()
}

func (w *gtkWindow) Hide() {
	w.win.SetVisible(false)
}

func (w *gtkWindow) SetCloseHandler(fn func()) {
	w.onClose = fn
}

func (w *gtkWindow) Destroy() error {
	w.once.Do(func() {
		w.onClose = nil
		w.win.Destroy()
		if w.forget != nil {
			w.forget(w)
		}
	})
	return nil
}

// pageView stands in for an embedded browser: it shows the target
// address and exposes the bridge calls as header bar buttons.
type pageView struct {
	platform *Platform
	window   *gtkWindow
	bridge   lifecycle.Bridge

	mu      sync.Mutex
	url     string
	address *gtk.Label
	stopped bool
}

func newPageView(p *Platform, w *gtkWindow, url string, bridge lifecycle.Bridge) *pageView {
	v := &pageView{
		platform: p,
		window:   w,
		bridge:   bridge,
		address:  gtk.NewLabel(""),
	}

	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(24)
	box.SetMarginBottom(24)
	box.SetMarginStart(24)
	box.SetMarginEnd(24)
	box.SetVAlign(gtk.AlignCenter)

	title := gtk.NewLabel(w.title)
	title.AddCSSClass("title-1")
	box.Append(title)

	v.address.AddCSSClass("dim-label")
	v.address.SetSelectable(true)
	box.Append(v.address)

	openBtn := gtk.NewButtonWithLabel("Open in browser")
	openBtn.AddCSSClass("suggested-action")
	openBtn.SetHAlign(gtk.AlignCenter)
	openBtn.ConnectClicked(v.openInBrowser)
	box.Append(openBtn)

	if bridge != nil {
		mailBtn := gtk.NewButtonWithLabel("Mail")
		mailBtn.SetTooltipText("Open Pixelated in a new window")
		mailBtn.ConnectClicked(bridge.OpenLinkedApp)
		w.header.PackStart(mailBtn)

		quitBtn := gtk.NewButtonWithLabel("Quit")
		quitBtn.AddCSSClass("destructive-action")
		quitBtn.SetTooltipText("Stop Bitmask and close")
		quitBtn.ConnectClicked(bridge.Shutdown)
		w.header.PackEnd(quitBtn)
	}

	w.win.SetChild(box)
	v.Load(url)
	return v
}

// Load shows url. The token fragment is never rendered.
func (v *pageView) Load(url string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.url = url

	shown := url
	if i := strings.IndexByte(shown, '#'); i >= 0 {
		shown = shown[:i]
	}
	v.address.SetText(shown)
}

func (v *pageView) openInBrowser() {
	v.mu.Lock()
	url := v.url
	v.mu.Unlock()

	if v.bridge != nil {
		v.bridge.OpenSystemBrowser(url)
		return
	}
	if err := v.platform.OpenURL(url); err != nil {
		common.LogWarn("%v", err)
	}
}

func (v *pageView) Stop() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.stopped {
		v.stopped = true
		v.window.win.SetChild(nil)
	}
	return nil
}
