package services

import (
	"sync"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
)

// defaultEventBuffer is used when a subscriber asks for a non-positive buffer.
const defaultEventBuffer = 16

// EventHub is an in-process publish/subscribe fan-out for asset changes.
// Slow subscribers miss events rather than stalling publishers.
type EventHub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan domain.AssetEvent
	closed bool
}

// NewEventHub creates an empty hub.
func NewEventHub() *EventHub {
	return &EventHub{subs: make(map[int]chan domain.AssetEvent)}
}

var _ portssvc.AssetEventHub = (*EventHub)(nil)

// Publish delivers event to every subscriber with room in its buffer.
func (h *EventHub) Publish(event domain.AssetEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers a new listener. Calling the returned function unsubscribes and
// closes the channel; it is safe to call more than once.
func (h *EventHub) Subscribe(buffer int) (<-chan domain.AssetEvent, func()) {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	ch := make(chan domain.AssetEvent, buffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(c)
			}
		})
	}
}

// Close closes every subscriber channel. Later publishes are dropped.
func (h *EventHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

// SubscriberCount returns the number of active subscriptions.
func (h *EventHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
