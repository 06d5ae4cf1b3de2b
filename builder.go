package biztrack

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/biztrack/biztrack-go/credstore"
	"github.com/biztrack/biztrack-go/transport"
)

// Builder assembles a Client. Construction is allocation-only until Build;
// a builder produces at most one Client.
type Builder struct {
	config     Config
	store      credstore.Store
	httpClient *http.Client
	logger     zerolog.Logger
	sink       EventSink
	buffer     int

	built bool
}

// New returns a Builder with defaults: in-memory credential store, default
// HTTP client with the configured timeout, no logging, no event sink.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig replaces the whole config.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithBaseURL sets just the backend base URL.
func (b *Builder) WithBaseURL(u string) *Builder {
	b.config.BaseURL = u
	return b
}

// WithCredentialStore sets the persistence backend for the session token
// and cached profile.
func (b *Builder) WithCredentialStore(s credstore.Store) *Builder {
	b.store = s
	return b
}

// WithHTTPClient injects the http.Client used for every request. The
// injected client's timeout policy wins over Config.HTTPTimeout.
func (b *Builder) WithHTTPClient(c *http.Client) *Builder {
	b.httpClient = c
	return b
}

// WithLogger sets the SDK logger.
func (b *Builder) WithLogger(l zerolog.Logger) *Builder {
	b.logger = l
	return b
}

// WithEventSink subscribes sink to session lifecycle events, delivered
// asynchronously with a bounded buffer of size buffer (<=0 means the
// default).
func (b *Builder) WithEventSink(sink EventSink, buffer int) *Builder {
	b.sink = sink
	b.buffer = buffer
	return b
}

// Build validates the config and wires the client. The manager's expiry
// path is registered as the transport's unauthorized handler before Build
// returns, so the handler exists before any request can be dispatched.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	b.built = true

	store := b.store
	if store == nil {
		store = credstore.NewMemory()
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: b.config.HTTPTimeout}
	}

	core, err := transport.NewCore(transport.Options{
		BaseURL:    b.config.BaseURL,
		HTTPClient: httpClient,
		Tokens:     transport.StoreSource{Store: store},
		UserAgent:  b.config.UserAgent,
		Logger:     b.logger,
	})
	if err != nil {
		return nil, err
	}

	events := newEventDispatcher(b.sink, b.buffer)
	m := newMetrics()
	session := newManager(core, store, b.logger, events, m)
	core.SetUnauthorizedHandler(session.handleUnauthorized)

	return newClient(core, store, session, events, m), nil
}
