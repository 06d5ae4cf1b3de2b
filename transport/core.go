package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/biztrack/biztrack-go/credstore"
)

// Responses are read fully so connections can be reused, but never without a
// bound.
const maxResponseBytes = 4 << 20

// TokenSource yields the bearer token to attach to an outbound request.
// Returning an empty token with a nil error means "send unauthenticated".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StoreSource reads the token from a credential store at every dispatch, so
// concurrent requests each see the token as of their own send time.
type StoreSource struct {
	Store credstore.Store
}

// Token implements TokenSource. An absent key is not an error.
func (s StoreSource) Token(ctx context.Context) (string, error) {
	v, err := s.Store.Get(ctx, credstore.KeyToken)
	if err != nil {
		if errors.Is(err, credstore.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(v), nil
}

// Options configures a Core.
type Options struct {
	// BaseURL is the backend root, e.g. "https://api.example.com/api".
	BaseURL string

	// HTTPClient performs the actual requests. Defaults to
	// http.DefaultClient; any timeout policy belongs to the injected
	// client.
	HTTPClient *http.Client

	// Tokens supplies the bearer token per request. Nil means every
	// request goes out unauthenticated.
	Tokens TokenSource

	// UserAgent is sent verbatim when non-empty.
	UserAgent string

	Logger zerolog.Logger
}

// Core is the shared request pipeline. Safe for concurrent use; the only
// mutable state is the unauthorized handler slot.
type Core struct {
	baseURL   string
	client    *http.Client
	tokens    TokenSource
	userAgent string
	log       zerolog.Logger

	mu             sync.Mutex
	onUnauthorized func(staleToken string)
}

// NewCore builds a Core from opts. BaseURL is required.
func NewCore(opts Options) (*Core, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("transport: base URL required")
	}
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Core{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		client:    client,
		tokens:    opts.Tokens,
		userAgent: opts.UserAgent,
		log:       opts.Logger,
	}, nil
}

// SetUnauthorizedHandler replaces the single registered 401 handler.
// Registering a new handler silently discards the previous one; nil clears
// the slot. Single-subscriber on purpose: exactly one session authority
// exists per process. The handler receives the token the failing request
// carried (possibly empty), so the authority can ignore a 401 that belongs
// to a session it has already replaced.
func (c *Core) SetUnauthorizedHandler(fn func(staleToken string)) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

func (c *Core) unauthorizedHandler() func(string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.onUnauthorized
}

// Do performs one JSON request. body, when non-nil, is marshalled as the
// request payload; out, when non-nil, receives the decoded 2xx response
// body. Non-2xx statuses return *HTTPError, transport failures return
// *NetworkError, and a 401 additionally fires the unauthorized handler
// before the error is returned.
func (c *Core) Do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("transport: encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("transport: build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	sentToken := c.attachToken(ctx, req, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug().Str("request_id", requestID).Str("path", path).Err(err).
			Msg("network error or no response")
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().Str("request_id", requestID).Str("path", path).
			Int("status", resp.StatusCode).Msg("error response")
		if resp.StatusCode == http.StatusUnauthorized {
			if fn := c.unauthorizedHandler(); fn != nil {
				fn(sentToken)
			}
		}
		return &HTTPError{Status: resp.StatusCode, Body: raw, RequestID: requestID}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("transport: decode response: %w", err)
		}
	}
	return nil
}

// attachToken reads the current token, sets the Authorization header, and
// returns the token it attached. A token read failure must not block the
// request; it is logged and the request goes out unauthenticated.
func (c *Core) attachToken(ctx context.Context, req *http.Request, requestID string) string {
	if c.tokens == nil {
		return ""
	}
	tok, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Warn().Str("request_id", requestID).Err(err).
			Msg("token read failed, sending unauthenticated")
		return ""
	}
	if tok == "" {
		return ""
	}
	c.log.Debug().Str("request_id", requestID).
		Str("token_prefix", tokenPrefix(tok)).Msg("attaching bearer token")
	req.Header.Set("Authorization", "Bearer "+tok)
	return tok
}

// tokenPrefix truncates a token for logging. Whole tokens never hit logs.
func tokenPrefix(tok string) string {
	if len(tok) <= 10 {
		return tok
	}
	return tok[:10] + "..."
}

// Get performs a GET request.
func (c *Core) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request.
func (c *Core) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request.
func (c *Core) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE request.
func (c *Core) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}
