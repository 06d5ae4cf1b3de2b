package biztrack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/biztrack/biztrack-go/credstore"
	"github.com/biztrack/biztrack-go/transport"
)

// Auth endpoints. Everything else in the backend is a bearer-authenticated
// resource; only these two issue tokens.
const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
)

// authResponse is the wire shape both auth endpoints share. Register may
// return a message and no token when email verification is required.
type authResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// Manager is the sole authority for authentication state. It mediates
// between the presentation layer, the credential store, and the backend's
// auth endpoints. All methods are safe for concurrent use; in-memory state
// is authoritative and persistence is best-effort.
type Manager struct {
	core    *transport.Core
	store   credstore.Store
	log     zerolog.Logger
	events  *eventDispatcher
	metrics *metrics

	mu         sync.Mutex
	state      SessionState
	token      string
	user       *User
	generation uint64
}

func newManager(core *transport.Core, store credstore.Store, log zerolog.Logger, events *eventDispatcher, m *metrics) *Manager {
	return &Manager{
		core:    core,
		store:   store,
		log:     log,
		events:  events,
		metrics: m,
		state:   StateUnknown,
	}
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Session {
	s := Session{
		State:      m.state,
		Token:      m.token,
		Generation: m.generation,
	}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// Login authenticates against the backend and, on success, holds the
// session in memory and mirrors it to the credential store. On failure the
// error propagates unchanged and the session state is exactly what it was
// before the call.
func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	prev := m.beginTransient(StateAuthenticating)

	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := m.core.Post(ctx, pathLogin, body, &resp); err != nil {
		m.restoreState(StateAuthenticating, prev)
		m.metrics.Inc(MetricLoginFailure)
		m.log.Debug().Err(err).Msg("login failed")
		return nil, err
	}
	if resp.Token == "" || resp.User == nil {
		m.restoreState(StateAuthenticating, prev)
		m.metrics.Inc(MetricLoginFailure)
		return nil, ErrLoginIncomplete
	}

	m.adoptSession(ctx, resp.Token, resp.User)
	m.metrics.Inc(MetricLoginSuccess)
	m.emit(EventLogin, resp.User.ID, "")
	m.log.Info().Int64("user_id", resp.User.ID).Msg("logged in")
	return resp.User, nil
}

// Register creates an account. Backends with email verification enabled
// return a message and no token; the session then stays unauthenticated and
// the caller should prompt the user to verify before logging in. Backends
// without verification return a token and the session becomes authenticated
// exactly as with Login.
func (m *Manager) Register(ctx context.Context, name, email, password, companyName string) (RegisterResult, error) {
	prev := m.beginTransient(StateRegistering)

	var resp authResponse
	body := map[string]string{
		"name":        name,
		"email":       email,
		"password":    password,
		"companyName": companyName,
	}
	if err := m.core.Post(ctx, pathRegister, body, &resp); err != nil {
		m.restoreState(StateRegistering, prev)
		m.metrics.Inc(MetricRegisterFailure)
		m.log.Debug().Err(err).Msg("register failed")
		return RegisterResult{}, err
	}

	if resp.Token != "" && resp.User != nil {
		m.adoptSession(ctx, resp.Token, resp.User)
		m.metrics.Inc(MetricRegisterSuccess)
		m.emit(EventRegister, resp.User.ID, "")
		m.log.Info().Int64("user_id", resp.User.ID).Msg("registered and logged in")
		return RegisterResult{Token: resp.Token, User: resp.User}, nil
	}

	if resp.Message != "" {
		// Verification pending: no credentials exist yet, nothing is
		// persisted, and the session state is unchanged.
		m.restoreState(StateRegistering, prev)
		m.metrics.Inc(MetricRegisterPending)
		m.log.Info().Msg("registration pending email verification")
		return RegisterResult{Message: resp.Message}, nil
	}

	m.restoreState(StateRegistering, prev)
	m.metrics.Inc(MetricRegisterFailure)
	return RegisterResult{}, ErrLoginIncomplete
}

// Logout ends the session. It always succeeds from the caller's
// perspective: in-memory state is cleared first and is authoritative, and
// the credential store deletes are best-effort. Calling Logout when already
// unauthenticated is a no-op that still ends unauthenticated.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.state = StateLoggingOut
	userID := userIDOf(m.user)
	m.token = ""
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()

	m.clearStore(ctx)
	m.metrics.Inc(MetricLogout)
	m.emit(EventLogout, userID, "")
	m.log.Info().Msg("logged out")
}

// Restore loads persisted credentials at process start. A present token is
// trusted optimistically, with no network round-trip to validate it; the
// first authenticated request is what discovers a stale token and triggers
// the unauthorized path. A token without a decodable profile (or the reverse)
// is corrupt state and resolves to unauthenticated.
func (m *Manager) Restore(ctx context.Context) Session {
	m.mu.Lock()
	m.state = StateRestoring
	m.mu.Unlock()

	tok, tokErr := m.store.Get(ctx, credstore.KeyToken)
	profile, profErr := m.store.Get(ctx, credstore.KeyProfile)

	var user User
	decodeErr := profErr
	if profErr == nil {
		decodeErr = json.Unmarshal(profile, &user)
	}
	hasToken := tokErr == nil && len(tok) > 0
	hasProfile := decodeErr == nil

	if !hasToken || !hasProfile {
		if tokErr != nil && !errors.Is(tokErr, credstore.ErrNotFound) {
			m.metrics.Inc(MetricStorageError)
			m.log.Warn().Err(tokErr).Msg("restore: token read failed, treating as logged out")
		}
		// A token without a readable profile, or the reverse, is corrupt
		// state: the two keys are only ever written and deleted together.
		if hasToken != hasProfile {
			m.log.Warn().Msg("restore: corrupt persisted credentials, clearing")
			m.clearStore(ctx)
		}
		m.mu.Lock()
		m.state = StateUnauthenticated
		m.token = ""
		m.user = nil
		snap := m.snapshotLocked()
		m.mu.Unlock()
		m.metrics.Inc(MetricRestoreMiss)
		return snap
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.token = string(tok)
	m.user = &user
	m.generation++
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.metrics.Inc(MetricRestoreHit)
	m.emit(EventRestored, user.ID, "")
	m.log.Info().Int64("user_id", user.ID).Msg("session restored")
	return snap
}

// handleUnauthorized is the transport's 401 callback: a stale, expired, or
// revoked token self-heals into a clean logged-out state without user
// action. staleToken identifies the session generation the failing request
// belonged to; if a newer login has already replaced it, the 401 is old
// news and nothing happens.
func (m *Manager) handleUnauthorized(staleToken string) {
	m.mu.Lock()
	if m.token == "" || (staleToken != "" && staleToken != m.token) {
		m.mu.Unlock()
		return
	}
	userID := userIDOf(m.user)
	m.state = StateLoggingOut
	m.token = ""
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()

	// Same best-effort cleanup as an explicit logout. The store deletes
	// run on a background context: the request that carried the 401 may
	// already be cancelled.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m.clearStore(ctx)

	m.metrics.Inc(MetricSessionExpired)
	m.emit(EventSessionExpired, userID, http.StatusText(http.StatusUnauthorized))
	m.log.Info().Msg("session expired, logged out")
}

// adoptSession installs freshly issued credentials and mirrors them to the
// store. Both keys are written together; a failed write is logged and does
// not undo the in-memory transition.
func (m *Manager) adoptSession(ctx context.Context, token string, user *User) {
	m.mu.Lock()
	m.token = token
	u := *user
	m.user = &u
	m.state = StateAuthenticated
	m.generation++
	m.mu.Unlock()

	if err := m.store.Set(ctx, credstore.KeyToken, []byte(token)); err != nil {
		m.metrics.Inc(MetricStorageError)
		m.log.Warn().Err(err).Msg("persist token failed")
	}
	profile, err := json.Marshal(user)
	if err == nil {
		err = m.store.Set(ctx, credstore.KeyProfile, profile)
	}
	if err != nil {
		m.metrics.Inc(MetricStorageError)
		m.log.Warn().Err(err).Msg("persist profile failed")
	}
}

// clearStore deletes both credential keys, best-effort.
func (m *Manager) clearStore(ctx context.Context) {
	if err := m.store.Delete(ctx, credstore.KeyToken); err != nil {
		m.metrics.Inc(MetricStorageError)
		m.log.Warn().Err(err).Msg("delete token failed")
	}
	if err := m.store.Delete(ctx, credstore.KeyProfile); err != nil {
		m.metrics.Inc(MetricStorageError)
		m.log.Warn().Err(err).Msg("delete profile failed")
	}
}

// beginTransient flips into a loading state and returns the state to
// restore on failure.
func (m *Manager) beginTransient(s SessionState) SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.state
	m.state = s
	return prev
}

// restoreState undoes a transient on the failure path. It only restores
// while the state is still the transient this operation set: a 401 landing
// mid-operation ends the session through handleUnauthorized, and that
// transition wins over the rollback.
func (m *Manager) restoreState(transient, prev SessionState) {
	m.mu.Lock()
	if m.state == transient {
		m.state = prev
	}
	m.mu.Unlock()
}

func (m *Manager) emit(typ EventType, userID int64, errText string) {
	if m.events == nil {
		return
	}
	snap := m.Current()
	m.events.emit(Event{
		Timestamp: time.Now(),
		Type:      typ,
		State:     snap.State,
		StateName: snap.State.String(),
		UserID:    userID,
		Error:     errText,
	})
}

func userIDOf(u *User) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}
