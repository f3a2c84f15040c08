package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yllada/bitmask-shell/common"
)

type fakeWindow struct {
	mu         sync.Mutex
	title      string
	shown      int
	hidden     int
	destroyed  int
	onClose    func()
	destroyErr error
}

func (w *fakeWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shown++
}

func (w *fakeWindow) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hidden++
}

func (w *fakeWindow) SetCloseHandler(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClose = fn
}

func (w *fakeWindow) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destroyed++
	return w.destroyErr
}

// userClose simulates the window manager close button.
func (w *fakeWindow) userClose() {
	w.mu.Lock()
	fn := w.onClose
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (w *fakeWindow) counts() (shown, hidden, destroyed int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shown, w.hidden, w.destroyed
}

type fakeView struct {
	mu      sync.Mutex
	url     string
	bridge  Bridge
	stopped int
}

func (v *fakeView) Load(url string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.url = url
}

func (v *fakeView) Stop() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopped++
	return nil
}

type fakeTray struct {
	mu       sync.Mutex
	statuses []common.VPNStatus
	visible  bool
	stopped  int
	actions  TrayActions
}

func (t *fakeTray) SetVPNStatus(s common.VPNStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statuses = append(t.statuses, s)
}

func (t *fakeTray) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

func (t *fakeTray) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped++
}

func (t *fakeTray) lastStatus() common.VPNStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statuses[len(t.statuses)-1]
}

// fakePlatform runs scheduled functions on a single goroutine, like a
// toolkit main loop.
type fakePlatform struct {
	mu         sync.Mutex
	windows    []*fakeWindow
	views      []*fakeView
	tray       *fakeTray
	trayErr    error
	releases   int
	releaseErr error
	opened     []string
	notices    int

	tasks    chan func()
	quit     chan struct{}
	quitOnce sync.Once
	started  chan struct{}
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		tray:    &fakeTray{visible: true},
		tasks:   make(chan func(), 32),
		quit:    make(chan struct{}),
		started: make(chan struct{}),
	}
}

func (p *fakePlatform) BuildWindow(title string) (Window, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w := &fakeWindow{title: title}
	p.windows = append(p.windows, w)
	return w, nil
}

func (p *fakePlatform) BuildWebView(w Window, url string, bridge Bridge) (WebView, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := &fakeView{url: url, bridge: bridge}
	p.views = append(p.views, v)
	return v, nil
}

func (p *fakePlatform) BuildTray(actions TrayActions) (Tray, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.trayErr != nil {
		return nil, p.trayErr
	}
	p.tray.actions = actions
	return p.tray, nil
}

func (p *fakePlatform) Schedule(fn func()) {
	p.tasks <- fn
}

func (p *fakePlatform) Run() error {
	close(p.started)
	for {
		select {
		case fn := <-p.tasks:
			fn()
		case <-p.quit:
			return nil
		}
	}
}

func (p *fakePlatform) Quit() {
	p.quitOnce.Do(func() { close(p.quit) })
}

func (p *fakePlatform) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.releases++
	return p.releaseErr
}

func (p *fakePlatform) OpenURL(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opened = append(p.opened, url)
	return nil
}

func (p *fakePlatform) Notify(title, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices++
	return nil
}

func (p *fakePlatform) window(i int) *fakeWindow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.windows[i]
}

func (p *fakePlatform) view(i int) *fakeView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.views[i]
}

func (p *fakePlatform) windowCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.windows)
}

// onLoop runs fn on the event loop and waits for it.
func (p *fakePlatform) onLoop(t *testing.T, fn func()) {
	t.Helper()
	done := make(chan struct{})
	p.Schedule(func() {
		fn()
		close(done)
	})
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not run scheduled function")
	}
}

type fakeDaemon struct {
	mu       sync.Mutex
	starts   int
	stops    int
	startErr error
	stopErr  error
}

func (d *fakeDaemon) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.starts++
	return d.startErr
}

func (d *fakeDaemon) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stops++
	return d.stopErr
}

func (d *fakeDaemon) counts() (starts, stops int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.starts, d.stops
}

var errBoom = errors.New("boom")
