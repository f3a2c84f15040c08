// Package events subscribes the shell to notifications emitted by bitmaskd.
package events

import "sync"

// Handler receives an event as a positional list: the topic first,
// followed by the event content.
type Handler func(args ...interface{})

// Bus delivers events published under a topic to subscribed handlers.
type Bus interface {
	// Subscribe registers h for topic. The returned function removes it.
	Subscribe(topic string, h Handler) (unsubscribe func(), err error)
}

// MemoryBus is an in-process Bus. It is used when no session bus is
// reachable and by tests.
type MemoryBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
}

// NewMemoryBus creates an empty in-process bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string]map[int]Handler)}
}

// Subscribe implements Bus.
func (b *MemoryBus) Subscribe(topic string, h Handler) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	b.subs[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}, nil
}

// Publish calls every handler of topic with (topic, content...).
func (b *MemoryBus) Publish(topic string, content ...interface{}) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	args := append([]interface{}{topic}, content...)
	for _, h := range handlers {
		h(args...)
	}
}
