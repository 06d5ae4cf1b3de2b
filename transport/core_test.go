package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/biztrack/biztrack-go/credstore"
)

type staticSource struct {
	tok string
	err error
}

func (s staticSource) Token(context.Context) (string, error) { return s.tok, s.err }

func newTestCore(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Core {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	core, err := NewCore(Options{BaseURL: srv.URL, Tokens: tokens})
	if err != nil {
		t.Fatalf("NewCore failed: %v", err)
	}
	return core
}

func TestTokenAttachedWhenPresent(t *testing.T) {
	var gotAuth string
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, staticSource{tok: "t1"})

	if err := core.Get(context.Background(), "/invoices", nil); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("Authorization = %q, want Bearer t1", gotAuth)
	}
}

func TestNoTokenNoAuthorizationHeader(t *testing.T) {
	var hasAuth bool
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}, staticSource{})

	if err := core.Get(context.Background(), "/invoices", nil); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if hasAuth {
		t.Fatal("request carried an Authorization header without a token")
	}
}

func TestTokenReadFailureSendsUnauthenticated(t *testing.T) {
	var hasAuth bool
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}, staticSource{err: errors.New("keyring locked")})

	if err := core.Get(context.Background(), "/invoices", nil); err != nil {
		t.Fatalf("token read failure must not block the request: %v", err)
	}
	if hasAuth {
		t.Fatal("request carried an Authorization header after token read failure")
	}
}

func TestStoreSourceReadsAtDispatchTime(t *testing.T) {
	store := credstore.NewMemory()
	var mu sync.Mutex
	var seen []string
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		w.Write([]byte(`{}`))
	}, StoreSource{Store: store})
	ctx := context.Background()

	store.Set(ctx, credstore.KeyToken, []byte("t1"))
	if err := core.Get(ctx, "/a", nil); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	// Token changes between requests; the next dispatch must see the new
	// value, not a cached one.
	store.Set(ctx, credstore.KeyToken, []byte("t2"))
	if err := core.Get(ctx, "/b", nil); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	store.Delete(ctx, credstore.KeyToken)
	if err := core.Get(ctx, "/c", nil); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	want := []string{"Bearer t1", "Bearer t2", ""}
	for i, w := range want {
		if seen[i] != w {
			t.Fatalf("request %d Authorization = %q, want %q", i, seen[i], w)
		}
	}
}

func TestUnauthorizedHandlerFiresAndErrorPropagates(t *testing.T) {
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, staticSource{tok: "stale"})

	fired := 0
	var stale string
	core.SetUnauthorizedHandler(func(tok string) {
		fired++
		stale = tok
	})

	err := core.Get(context.Background(), "/invoices", nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if fired != 1 {
		t.Fatalf("unauthorized handler fired %d times, want 1", fired)
	}
	if stale != "stale" {
		t.Fatalf("handler received token %q, want the token the request carried", stale)
	}
}

func TestUnauthorizedHandlerLastRegistrationWins(t *testing.T) {
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, staticSource{})

	var aFired, bFired int
	core.SetUnauthorizedHandler(func(string) { aFired++ })
	core.SetUnauthorizedHandler(func(string) { bFired++ })

	_ = core.Get(context.Background(), "/invoices", nil)

	if aFired != 0 {
		t.Fatalf("discarded handler fired %d times", aFired)
	}
	if bFired != 1 {
		t.Fatalf("current handler fired %d times, want 1", bFired)
	}
}

func TestNon2xxReturnsHTTPErrorWithBody(t *testing.T) {
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"email already taken"}`))
	}, staticSource{})

	err := core.Post(context.Background(), "/auth/register", map[string]string{}, nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", httpErr.Status)
	}
	if httpErr.Message() != "email already taken" {
		t.Fatalf("message = %q", httpErr.Message())
	}
}

func TestTransportFailureReturnsNetworkError(t *testing.T) {
	core, err := NewCore(Options{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewCore failed: %v", err)
	}

	err = core.Get(context.Background(), "/invoices", nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	var got string
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}, staticSource{})

	if err := core.Get(context.Background(), "/invoices", nil); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got == "" {
		t.Fatal("X-Request-ID header missing")
	}
}
