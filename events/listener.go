package events

import (
	"sync"

	"github.com/yllada/bitmask-shell/common"
)

// Listener tracks the VPN status announced on the bus and pushes each
// change to a renderer.
type Listener struct {
	mu          sync.Mutex
	status      common.VPNStatus
	renderer    common.StatusRenderer
	unsubscribe func()
}

// NewListener creates a listener that starts in the off state.
func NewListener(renderer common.StatusRenderer) *Listener {
	return &Listener{
		status:   common.VPNOff,
		renderer: renderer,
	}
}

// Register renders the current status and subscribes to VPN status events.
func (l *Listener) Register(bus Bus) error {
	l.render(l.Status())

	unsubscribe, err := bus.Subscribe(common.VPNStatusChangedTopic, l.OnEvent)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.unsubscribe = unsubscribe
	l.mu.Unlock()
	return nil
}

// OnEvent handles a (topic, status, ...) payload. Payloads without a
// string in second position, and status names outside the known set,
// are dropped.
func (l *Listener) OnEvent(args ...interface{}) {
	if len(args) < 2 {
		return
	}
	name, ok := args[1].(string)
	if !ok {
		return
	}
	status, ok := common.ParseVPNStatus(name)
	if !ok {
		common.LogDebug("Ignoring VPN status %q", name)
		return
	}

	l.mu.Lock()
	l.status = status
	l.mu.Unlock()

	l.render(status)
}

func (l *Listener) render(status common.VPNStatus) {
	if l.renderer != nil {
		l.renderer.SetVPNStatus(status)
	}
}

// Status returns the last recognized status.
func (l *Listener) Status() common.VPNStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Close unsubscribes from the bus.
func (l *Listener) Close() {
	l.mu.Lock()
	unsubscribe := l.unsubscribe
	l.unsubscribe = nil
	l.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
