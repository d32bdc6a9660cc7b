package service

import (
	"sync"

	"discard/internal/notes/data"
)

// EventKind says what happened to the note list
type EventKind int

const (
	EventAdded EventKind = iota
	EventUpdated
	EventDeleted
	EventReloaded
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventUpdated:
		return "updated"
	case EventDeleted:
		return "deleted"
	case EventReloaded:
		return "reloaded"
	}
	return "unknown"
}

// Event describes one change to the repository. Note is the zero value for
// EventReloaded.
type Event struct {
	Kind EventKind
	Note data.Note
}

const subscriberBuffer = 16

// eventHub fans events out to subscribers. A subscriber whose buffer is full
// misses the event; it can always re-read the list.
type eventHub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{subscribers: make(map[chan Event]struct{})}
}

func (h *eventHub) subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() { h.unsubscribe(ch) })
	}
}

func (h *eventHub) unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[ch]; ok {
		close(ch)
		delete(h.subscribers, ch)
	}
}

func (h *eventHub) publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}
