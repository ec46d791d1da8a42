package ingest

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"cloudsmets-go/internal/zbhci"
)

// EventType names what happened to a frame.
type EventType string

const (
	EventMessageDecoded EventType = "message_decoded"
	EventFrameDropped   EventType = "frame_dropped"
)

// Event is published once per handled frame. Data is a DecodedMessage or
// a DroppedFrame, matching Type.
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// DecodedMessage is the data of an EventMessageDecoded event.
type DecodedMessage struct {
	Source     string           `json:"source"`
	ReceivedAt time.Time        `json:"received_at"`
	Message    *zbhci.Message   `json:"message"`
	Attributes []zbhci.Rendered `json:"attributes"`
}

// DroppedFrame is the data of an EventFrameDropped event.
type DroppedFrame struct {
	Source     string    `json:"source"`
	ReceivedAt time.Time `json:"received_at"`
	Kind       string    `json:"kind"`
	Error      string    `json:"error"`
	Frame      []byte    `json:"frame"`
}

// EventHandler is a callback for events.
type EventHandler func(Event)

type subscription struct {
	types   []EventType // empty matches every type
	handler EventHandler
}

func (s subscription) matches(t EventType) bool {
	if len(s.types) == 0 {
		return true
	}
	for _, want := range s.types {
		if want == t {
			return true
		}
	}
	return false
}

// EventBus fans pipeline events out to subscribers.
type EventBus struct {
	mu     sync.RWMutex
	subs   map[uint64]subscription
	nextID uint64
	logger *slog.Logger
}

// NewEventBus creates a new event bus.
func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{
		subs:   make(map[uint64]subscription),
		logger: logger,
	}
}

// Subscribe registers handler for the given event types, or for every
// type when none are given. It returns an unsubscribe function.
func (eb *EventBus) Subscribe(handler EventHandler, types ...EventType) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	id := eb.nextID
	eb.nextID++
	eb.subs[id] = subscription{types: types, handler: handler}
	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		delete(eb.subs, id)
	}
}

// Emit calls every matching handler in subscription order, synchronously on
// the emitting worker. A panicking handler is recovered and logged.
func (eb *EventBus) Emit(event Event) {
	eb.mu.RLock()
	ids := make([]uint64, 0, len(eb.subs))
	for id, sub := range eb.subs {
		if sub.matches(event.Type) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	handlers := make([]EventHandler, len(ids))
	for i, id := range ids {
		handlers[i] = eb.subs[id].handler
	}
	eb.mu.RUnlock()

	for _, h := range handlers {
		eb.call(h, event)
	}
}

func (eb *EventBus) call(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error("event handler panic", "type", string(event.Type), "panic", r)
		}
	}()
	h(event)
}

// DropCounter tallies dropped frames by error kind. Subscribe its Observe
// method to EventFrameDropped.
type DropCounter struct {
	mu     sync.Mutex
	counts map[string]uint64
}

// Observe records one dropped frame event; other events are ignored.
func (c *DropCounter) Observe(e Event) {
	d, ok := e.Data.(DroppedFrame)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]uint64)
	}
	c.counts[d.Kind]++
}

// Snapshot returns a copy of the counts keyed by kind.
func (c *DropCounter) Snapshot() map[string]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]uint64, len(c.counts))
	for k, n := range c.counts {
		out[k] = n
	}
	return out
}
