package lifecycle

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/yllada/bitmask-shell/common"
	"github.com/yllada/bitmask-shell/daemon"
	"github.com/yllada/bitmask-shell/events"
)

// State is a step of the shell lifecycle.
type State int

const (
	StateIdle State = iota
	StateLaunching
	StateWaitingForToken
	StateReady
	StateRunning
	StateShuttingDown
	StateTerminated
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLaunching:
		return "Launching"
	case StateWaitingForToken:
		return "WaitingForToken"
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateShuttingDown:
		return "ShuttingDown"
	case StateTerminated:
		return "Terminated"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Daemon is the background service the shell launches and stops.
type Daemon interface {
	Start(ctx context.Context) error
	Stop() error
}

// Options configure a Controller.
type Options struct {
	BaseURL      string
	LinkedAppURL string
	TokenPath    string

	TokenAttempts int
	TokenInterval time.Duration

	MinimizeToTray    bool
	ShowNotifications bool
}

// Controller owns the daemon, the windows and the tray for one run of
// the shell. Every shutdown trigger converges on Shutdown, which runs once.
type Controller struct {
	opts       Options
	platform   Platform
	supervisor Daemon
	bus        events.Bus
	waitToken  func(ctx context.Context) (string, error)
	stderr     io.Writer

	mu          sync.Mutex
	state       State
	closing     bool
	userClosed  bool
	noticeShown bool
	exitCode    int

	primary   *session
	secondary *session
	tray      Tray
	listener  *events.Listener
}

// New creates a controller. bus may be nil, in which case the tray stays
// at its initial status.
func New(opts Options, platform Platform, supervisor Daemon, bus events.Bus) *Controller {
	c := &Controller{
		opts:       opts,
		platform:   platform,
		supervisor: supervisor,
		bus:        bus,
		stderr:     os.Stderr,
	}
	c.waitToken = daemon.NewTokenWaiter(opts.TokenPath, opts.TokenAttempts, opts.TokenInterval).Wait
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	prev := c.state
	c.state = s
	c.mu.Unlock()
	common.LogDebug("Lifecycle: %s -> %s", prev, s)
}

// Run launches the daemon, waits for it, shows the UI and blocks in the
// event loop. It returns the process exit status.
func (c *Controller) Run(ctx context.Context) int {
	url, err := c.launch(ctx)
	if err != nil {
		c.setState(StateFailed)
		common.LogError("Startup failed: %v", err)
		fmt.Fprintf(c.stderr, "ERROR: %v\n", err)
		return 1
	}

	if err := c.present(url); err != nil {
		c.setState(StateFailed)
		common.LogError("Could not build the UI: %v", err)
		fmt.Fprintf(c.stderr, "ERROR: %v\n", err)
		if err := c.supervisor.Stop(); err != nil {
			common.LogWarn("Failed to terminate daemon: %v", err)
		}
		return 1
	}

	if err := c.platform.Run(); err != nil {
		common.LogError("Event loop stopped: %v", err)
	}
	// The loop can also end on its own, e.g. when the toolkit quits.
	c.Shutdown()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exitCode
}

func (c *Controller) launch(ctx context.Context) (string, error) {
	c.setState(StateLaunching)
	if err := daemon.ClearToken(c.opts.TokenPath); err != nil {
		common.LogWarn("%v", err)
	}
	if err := c.supervisor.Start(ctx); err != nil {
		return "", err
	}

	c.setState(StateWaitingForToken)
	token, err := c.waitToken(ctx)
	if err != nil {
		return "", err
	}

	c.setState(StateReady)
	return ComposeURL(c.opts.BaseURL, token), nil
}

func (c *Controller) present(url string) error {
	primary, err := newSession(c.platform, common.AppName, url, &bridge{c: c})
	if err != nil {
		return err
	}
	primary.window.SetCloseHandler(c.onPrimaryClose)

	tray, err := c.platform.BuildTray(TrayActions{
		OnShow: c.ShowWindow,
		OnQuit: c.RequestQuit,
	})
	if err != nil {
		common.LogWarn("System tray unavailable: %v", err)
		tray = nil
	}

	var listener *events.Listener
	if tray != nil {
		listener = events.NewListener(tray)
		if c.bus != nil {
			if err := listener.Register(c.bus); err != nil {
				common.LogWarn("VPN status events unavailable: %v", err)
			}
		} else {
			tray.SetVPNStatus(listener.Status())
		}
	}

	c.mu.Lock()
	c.primary = primary
	c.tray = tray
	c.listener = listener
	c.mu.Unlock()

	primary.window.Show()
	c.setState(StateRunning)
	return nil
}

// onPrimaryClose hides the window to the tray unless the quit was
// explicit; otherwise it shuts down.
func (c *Controller) onPrimaryClose() {
	c.mu.Lock()
	hide := c.opts.MinimizeToTray && !c.userClosed && !c.closing &&
		c.tray != nil && c.tray.Visible()
	notify := hide && c.opts.ShowNotifications && !c.noticeShown
	if notify {
		c.noticeShown = true
	}
	primary := c.primary
	c.mu.Unlock()

	if !hide {
		c.Shutdown()
		return
	}

	if notify {
		msg := common.AppName + " will minimize to the system tray. " +
			"Choose Quit from the tray menu to exit."
		if err := c.platform.Notify(common.AppName, msg); err != nil {
			common.LogDebug("Notification failed: %v", err)
		}
	}
	primary.window.Hide()
}

// ShowWindow brings the primary window back from the tray.
func (c *Controller) ShowWindow() {
	c.mu.Lock()
	primary := c.primary
	closing := c.closing
	c.mu.Unlock()

	if primary != nil && !closing {
		primary.window.Show()
	}
}

// RequestQuit marks the quit as user initiated and shuts down.
// It must run on the event loop; other goroutines use HandleInterrupt.
func (c *Controller) RequestQuit() {
	c.mu.Lock()
	c.userClosed = true
	c.mu.Unlock()
	c.Shutdown()
}

// HandleInterrupt schedules RequestQuit on the event loop. It never
// tears down from the calling goroutine.
func (c *Controller) HandleInterrupt() {
	c.platform.Schedule(c.RequestQuit)
}

// OpenLinkedApp opens the secondary window, or re-presents it when it
// is already open.
func (c *Controller) OpenLinkedApp() error {
	c.mu.Lock()
	if c.closing {
		c.mu.Unlock()
		return nil
	}
	if existing := c.secondary; existing != nil {
		c.mu.Unlock()
		existing.window.Show()
		return nil
	}
	c.mu.Unlock()

	s, err := newSession(c.platform, "Pixelated", c.opts.LinkedAppURL, nil)
	if err != nil {
		return err
	}
	s.window.SetCloseHandler(func() { c.closeSecondary(s) })

	c.mu.Lock()
	if c.closing || c.secondary != nil {
		c.mu.Unlock()
		_ = s.stop()
		return nil
	}
	c.secondary = s
	c.mu.Unlock()

	s.window.Show()
	return nil
}

func (c *Controller) closeSecondary(s *session) {
	c.mu.Lock()
	if c.secondary == s {
		c.secondary = nil
	}
	c.mu.Unlock()

	if err := s.stop(); err != nil {
		common.LogWarn("Failed to close secondary window: %v", err)
	}
}

// Shutdown tears everything down once: secondary window, daemon,
// primary window, tray, toolkit. Later calls return immediately.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	if c.closing {
		c.mu.Unlock()
		return
	}
	c.closing = true
	c.userClosed = true
	prev := c.state
	c.state = StateShuttingDown
	primary, secondary := c.primary, c.secondary
	tray, listener := c.tray, c.listener
	c.secondary = nil
	c.mu.Unlock()
	common.LogDebug("Lifecycle: %s -> %s", prev, StateShuttingDown)

	exitCode := 0

	if secondary != nil {
		if err := secondary.stop(); err != nil {
			common.LogWarn("Failed to close secondary window: %v", err)
		}
	}
	if listener != nil {
		listener.Close()
	}

	if err := c.supervisor.Stop(); err != nil {
		common.LogWarn("Failed to terminate daemon: %v", err)
	}

	common.LogInfo("Shutting down gui...")
	if primary != nil {
		if err := primary.stop(); err != nil {
			common.LogError("Failed to stop main window: %v", err)
			exitCode = 1
		}
	}
	if tray != nil {
		tray.Stop()
	}
	if err := c.platform.Release(); err != nil {
		common.LogError("Failed to release UI resources: %v", err)
		exitCode = 1
	}
	c.platform.Quit()

	c.mu.Lock()
	c.exitCode = exitCode
	c.state = StateTerminated
	c.mu.Unlock()
	common.LogDebug("Lifecycle: %s -> %s", StateShuttingDown, StateTerminated)
}

// bridge exposes the controller to the page in the primary window.
type bridge struct {
	c *Controller
}

func (b *bridge) Shutdown() {
	b.c.RequestQuit()
}

func (b *bridge) OpenSystemBrowser(url string) {
	if err := b.c.platform.OpenURL(url); err != nil {
		common.LogWarn("Could not open %s in the system browser: %v", url, err)
	}
}

func (b *bridge) OpenLinkedApp() {
	if err := b.c.OpenLinkedApp(); err != nil {
		common.LogWarn("Could not open linked app: %v", err)
	}
}
