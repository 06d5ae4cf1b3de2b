package biztrack

import (
	"context"
	"testing"
)

func TestRouteForProjection(t *testing.T) {
	cases := []struct {
		name string
		in   Session
		want Route
	}{
		{"initial unknown", Session{State: StateUnknown}, RouteLoading},
		{"restoring", Session{State: StateRestoring}, RouteLoading},
		{"authenticating", Session{State: StateAuthenticating}, RouteLoading},
		{"logging out", Session{State: StateLoggingOut}, RouteLoading},
		{"authenticated", Session{State: StateAuthenticated, Token: "t"}, RouteMain},
		{"unauthenticated", Session{State: StateUnauthenticated}, RouteAuth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RouteFor(tc.in); got != tc.want {
				t.Fatalf("RouteFor(%v) = %v, want %v", tc.in.State, got, tc.want)
			}
		})
	}
}

func TestRouteDrivenByEventStream(t *testing.T) {
	sink := NewChannelSink(8)
	client := newTestClientWithSink(t, newTestBackend(), sink)
	nav := NewNavigator(client.Session())
	ctx := context.Background()

	// The update loop a presentation layer runs: block on the sink, and
	// re-render the route on each delivered transition instead of polling.
	if _, err := client.Session().Login(ctx, "a@b.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	events := collectEvents(t, sink, 1)
	if events[0].Type != EventLogin {
		t.Fatalf("event = %+v, want login", events[0])
	}
	if got := nav.Route(); got != RouteMain {
		t.Fatalf("route on login event = %v, want main", got)
	}

	client.Session().Logout(ctx)
	events = collectEvents(t, sink, 1)
	if events[0].Type != EventLogout {
		t.Fatalf("event = %+v, want logout", events[0])
	}
	if got := nav.Route(); got != RouteAuth {
		t.Fatalf("route on logout event = %v, want auth", got)
	}
}

func TestNavigatorFollowsSession(t *testing.T) {
	client := newTestClient(t, newTestBackend(), nil)
	nav := NewNavigator(client.Session())
	ctx := context.Background()

	if got := nav.Route(); got != RouteLoading {
		t.Fatalf("route before restore = %v, want loading", got)
	}

	client.Session().Restore(ctx)
	if got := nav.Route(); got != RouteAuth {
		t.Fatalf("route after empty restore = %v, want auth", got)
	}

	if _, err := client.Session().Login(ctx, "a@b.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got := nav.Route(); got != RouteMain {
		t.Fatalf("route after login = %v, want main", got)
	}

	client.Session().Logout(ctx)
	if got := nav.Route(); got != RouteAuth {
		t.Fatalf("route after logout = %v, want auth", got)
	}
}
