package biztrack

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func collectEvents(t *testing.T, sink *ChannelSink, n int) []Event {
	t.Helper()

	events := make([]Event, 0, n)
	for len(events) < n {
		select {
		case e := <-sink.Events():
			events = append(events, e)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d events", len(events), n)
		}
	}
	return events
}

func TestLifecycleEventsDelivered(t *testing.T) {
	sink := NewChannelSink(16)
	backend := newTestBackend()
	client := newTestClientWithSink(t, backend, sink)
	ctx := context.Background()

	client.Session().Restore(ctx)
	if _, err := client.Session().Login(ctx, "a@b.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	client.Session().Logout(ctx)

	events := collectEvents(t, sink, 2)
	if events[0].Type != EventLogin || events[0].UserID != 7 {
		t.Fatalf("first event = %+v, want login for user 7", events[0])
	}
	if events[1].Type != EventLogout {
		t.Fatalf("second event = %+v, want logout", events[1])
	}
	if events[1].State != StateUnauthenticated {
		t.Fatalf("logout event carries state %v", events[1].State)
	}
}

func TestSessionExpiredEvent(t *testing.T) {
	sink := NewChannelSink(16)
	backend := newTestBackend()
	client := newTestClientWithSink(t, backend, sink)
	ctx := context.Background()

	if _, err := client.Session().Login(ctx, "a@b.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	backend.validToken = "rotated"
	_, _ = client.Invoices().List(ctx)

	events := collectEvents(t, sink, 2)
	if events[1].Type != EventSessionExpired {
		t.Fatalf("second event = %+v, want session expired", events[1])
	}
}

func TestJSONWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), Event{
		Type:      EventLogin,
		StateName: StateAuthenticated.String(),
		UserID:    7,
	})

	line := buf.String()
	if !strings.Contains(line, `"session.login"`) || !strings.Contains(line, `"user_id":7`) {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatal("sink did not terminate the line")
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	block := make(chan struct{})
	sink := blockingSink{block: block}
	d := newEventDispatcher(sink, 1)

	// First event occupies the sink, second fills the buffer, the rest
	// must drop rather than block a session transition.
	for i := 0; i < 10; i++ {
		d.emit(Event{Type: EventLogin})
	}
	if d.Dropped() == 0 {
		t.Fatal("no events dropped with a full buffer")
	}

	close(block)
	d.Close()
}

type blockingSink struct {
	block chan struct{}
}

func (s blockingSink) Emit(context.Context, Event) { <-s.block }

func newTestClientWithSink(t *testing.T, backend *testBackend, sink EventSink) *Client {
	t.Helper()

	srv := newBackendServer(t, backend)
	client, err := New().
		WithBaseURL(srv.URL).
		WithEventSink(sink, 16).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}
