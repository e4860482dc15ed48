// Package events fans out "something changed" signals to in-process
// subscribers. Events carry only the key that changed.
package events

import (
	"context"
	"sync"
)

type Event struct {
	Key string
}

type subscriber struct {
	key  string
	ch   chan Event
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// Hub is a keyed broadcaster. Sends never block: a subscriber whose
// buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*subscriber]struct{}
	buffer int
	closed bool
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[*subscriber]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers interest in key. An empty key receives everything.
// The returned cancel func closes the channel and is safe to call twice.
// After Close the channel comes back already closed.
func (h *Hub) Subscribe(key string) (<-chan Event, func()) {
	s := &subscriber{key: key, ch: make(chan Event, h.buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		s.close()
		return s.ch, func() {}
	}
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, s)
		h.mu.Unlock()
		s.close()
	}
	return s.ch, cancel
}

// Close ends every subscription so long-lived streams return. Used on
// server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[*subscriber]struct{})
	h.closed = true
	h.mu.Unlock()

	for s := range subs {
		s.close()
	}
}

func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subs {
		if s.key != "" && s.key != e.Key {
			continue
		}
		select {
		case s.ch <- e:
		default:
		}
	}
}

// CartChanged lets the hub act as the cart notifier.
func (h *Hub) CartChanged(_ context.Context, key string) {
	h.Publish(Event{Key: key})
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
