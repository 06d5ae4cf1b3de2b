package biztrack

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// EventType labels a session lifecycle transition.
type EventType string

const (
	EventRestored       EventType = "session.restored"
	EventLogin          EventType = "session.login"
	EventRegister       EventType = "session.register"
	EventLogout         EventType = "session.logout"
	EventSessionExpired EventType = "session.expired"
)

// Event is one session lifecycle transition, delivered asynchronously to
// the configured sink. The token itself is never part of an event.
type Event struct {
	Timestamp time.Time    `json:"timestamp"`
	Type      EventType    `json:"event_type"`
	State     SessionState `json:"-"`
	StateName string       `json:"state"`
	UserID    int64        `json:"user_id,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// EventSink receives session lifecycle events. Emit must not block for long;
// the dispatcher delivers from a single goroutine.
type EventSink interface {
	Emit(ctx context.Context, event Event)
}

// NoOpSink discards events.
type NoOpSink struct{}

// Emit implements EventSink.
func (NoOpSink) Emit(context.Context, Event) {}

// ChannelSink exposes events on a channel, the natural fit for a
// presentation layer's update loop.
type ChannelSink struct {
	events chan Event
}

// NewChannelSink returns a sink buffering up to buffer events.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{events: make(chan Event, buffer)}
}

// Emit implements EventSink.
func (s *ChannelSink) Emit(ctx context.Context, event Event) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

// Events returns the receive side of the sink.
func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// JSONWriterSink writes one JSON line per event, for debugging or audit
// trails.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink returns a sink writing to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{writer: w}
}

// Emit implements EventSink.
func (s *JSONWriterSink) Emit(_ context.Context, event Event) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
