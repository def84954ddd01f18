package session

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/models"
)

// ErrInvalidCredentials is returned by Login for any credential failure.
// Wrong username and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Status is the session state.
type Status int

const (
	// StatusPending means Initialize has not resolved yet. Callers that
	// gate on authentication treat it as unauthenticated (fail closed)
	// but can display it as "checking session" rather than "logged out".
	StatusPending Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the session state. The user record
// is a copy; mutating it does not affect the store.
type Snapshot struct {
	Status Status
	User   *models.User
	Token  string
}

// IsAuthenticated reports whether the snapshot represents a logged-in
// session.
func (s Snapshot) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// Store is the single source of truth for "who is logged in". State
// moves only through the operations below; callers read it via Snapshot.
//
// Invariant: StatusAuthenticated implies both user and token are set; an
// empty token implies the status is not StatusAuthenticated.
type Store struct {
	client *api.Client
	tokens *TokenStore

	mu     sync.RWMutex
	status Status
	user   *models.User
	token  string
}

// NewStore creates a session store in the pending state. Initialize must
// be called before the session is gated on.
func NewStore(client *api.Client, tokens *TokenStore) *Store {
	return &Store{
		client: client,
		tokens: tokens,
		status: StatusPending,
	}
}

// Initialize resolves the persisted token, if any, into a session. Any
// failure (no token, network down, token revoked) lands in the
// unauthenticated state; a rejected token is also cleared from disk.
// Failures are never reported to the caller: they just mean "not logged
// in".
func (s *Store) Initialize(ctx context.Context) {
	token, err := s.tokens.Load()
	if err != nil {
		s.setUnauthenticated()
		return
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("stored token rejected, clearing")
		if err := s.tokens.Clear(); err != nil {
			log.Warn().Err(err).Msg("failed to clear stale token")
		}
		s.setUnauthenticated()
		return
	}

	s.setAuthenticated(user, token)
}

// Login exchanges credentials for a session. On any credential rejection
// the caller sees ErrInvalidCredentials; network failures propagate
// unchanged so they can be reported as such.
func (s *Store) Login(ctx context.Context, creds api.Credentials) error {
	user, token, err := s.client.Login(ctx, creds)
	if err != nil {
		s.setUnauthenticated()
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			return err
		}
		return ErrInvalidCredentials
	}

	if err := s.tokens.Save(token); err != nil {
		return err
	}
	s.setAuthenticated(user, token)

	log.Info().Str("username", user.Username).Msg("logged in")
	return nil
}

// Register creates an account and, like Login, authenticates on success.
// API errors propagate so validation messages reach the form.
func (s *Store) Register(ctx context.Context, data api.RegisterData) error {
	user, token, err := s.client.Register(ctx, data)
	if err != nil {
		s.setUnauthenticated()
		return err
	}

	if err := s.tokens.Save(token); err != nil {
		return err
	}
	s.setAuthenticated(user, token)

	log.Info().Str("username", user.Username).Msg("registered and logged in")
	return nil
}

// Logout ends the session. The local state and persisted token are
// cleared first, synchronously; the backend notification afterwards is
// best-effort and its failure is swallowed. Logout always succeeds
// locally regardless of network state.
func (s *Store) Logout(ctx context.Context) {
	if err := s.tokens.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted token")
	}
	s.setUnauthenticated()

	if err := s.client.Logout(ctx); err != nil {
		log.Debug().Err(err).Msg("backend logout notification failed")
	}
}

// UpdateUser replaces the session's user record after a profile edit.
// Authentication status and token are untouched.
func (s *Store) UpdateUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// HasRole reports whether the current user's role is one of roles.
// Always false when not authenticated, for any roles including none.
func (s *Store) HasRole(roles ...models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != StatusAuthenticated || s.user == nil {
		return false
	}
	return slices.Contains(roles, s.user.Role)
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Status: s.status, Token: s.token}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

func (s *Store) setAuthenticated(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusAuthenticated
	s.user = user
	s.token = token
}

func (s *Store) setUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusUnauthenticated
	s.user = nil
	s.token = ""
}
