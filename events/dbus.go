package events

import (
	"fmt"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/bitmask-shell/common"
)

// DBusBus receives bitmaskd events as signals on the session bus.
// A topic maps to the signal member name on common.EventsInterface.
type DBusBus struct {
	conn *dbus.Conn

	mu      sync.RWMutex
	nextID  int
	subs    map[string]map[int]Handler
	signals chan *dbus.Signal
	once    sync.Once
}

// ConnectSessionBus opens a private connection to the session bus.
func ConnectSessionBus() (*DBusBus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBusUnavailable, err)
	}
	return &DBusBus{
		conn:    conn,
		subs:    make(map[string]map[int]Handler),
		signals: make(chan *dbus.Signal, 16),
	}, nil
}

func matchOptions(topic string) []dbus.MatchOption {
	return []dbus.MatchOption{
		dbus.WithMatchObjectPath(dbus.ObjectPath(common.EventsPath)),
		dbus.WithMatchInterface(common.EventsInterface),
		dbus.WithMatchMember(topic),
	}
}

// Subscribe implements Bus.
func (b *DBusBus) Subscribe(topic string, h Handler) (func(), error) {
	b.mu.Lock()
	first := len(b.subs[topic]) == 0
	if first {
		if err := b.conn.AddMatchSignal(matchOptions(topic)...); err != nil {
			b.mu.Unlock()
			return nil, fmt.Errorf("%w: add match for %s: %v", common.ErrBusUnavailable, topic, err)
		}
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = h
	b.mu.Unlock()

	b.once.Do(func() {
		b.conn.Signal(b.signals)
		go b.dispatch()
	})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
		if len(b.subs[topic]) == 0 {
			delete(b.subs, topic)
			_ = b.conn.RemoveMatchSignal(matchOptions(topic)...)
		}
	}, nil
}

// dispatch runs until the connection closes and the signal channel is drained.
func (b *DBusBus) dispatch() {
	for sig := range b.signals {
		if sig == nil || sig.Path != dbus.ObjectPath(common.EventsPath) {
			continue
		}
		iface, member := splitSignalName(sig.Name)
		if iface != common.EventsInterface {
			continue
		}

		b.mu.RLock()
		handlers := make([]Handler, 0, len(b.subs[member]))
		for _, h := range b.subs[member] {
			handlers = append(handlers, h)
		}
		b.mu.RUnlock()

		args := append([]interface{}{member}, sig.Body...)
		for _, h := range handlers {
			h(args...)
		}
	}
}

func splitSignalName(name string) (iface, member string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}

// Close drops the bus connection.
func (b *DBusBus) Close() error {
	b.conn.RemoveSignal(b.signals)
	return b.conn.Close()
}
