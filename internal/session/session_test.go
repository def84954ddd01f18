package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/models"
)

// fakeBackend mimics the auth surface of the real backend: one valid
// credential pair, one valid token.
type fakeBackend struct {
	username   string
	password   string
	token      string
	user       models.User
	logoutCode int
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		readJSON(r, &creds)
		if creds.Username != b.username || creds.Password != b.password {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Invalid credentials."}`))
			return
		}
		writeJSON(w, map[string]any{"token": b.token, "user": b.user})
	})

	mux.HandleFunc("GET /auth/user/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token "+b.token {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid token."}`))
			return
		}
		writeJSON(w, b.user)
	})

	mux.HandleFunc("POST /auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		code := b.logoutCode
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
	})

	return mux
}

func readJSON(r *http.Request, out any) {
	_ = json.NewDecoder(r.Body).Decode(out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestStore(t *testing.T, backend *fakeBackend) (*Store, *TokenStore, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	tokens, err := NewTokenStore(t.TempDir())
	require.NoError(t, err)

	client := api.New(api.Config{BaseURL: server.URL, Timeout: 5 * time.Second}, tokens)
	return NewStore(client, tokens), tokens, server
}

func defaultBackend() *fakeBackend {
	return &fakeBackend{
		username: "admin",
		password: "admin123",
		token:    "abc",
		user:     models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
	}
}

func TestStore_Login(t *testing.T) {
	t.Run("valid credentials authenticate and persist the token", func(t *testing.T) {
		store, tokens, _ := newTestStore(t, defaultBackend())

		err := store.Login(context.Background(), api.Credentials{Username: "admin", Password: "admin123"})
		require.NoError(t, err)

		snap := store.Snapshot()
		assert.Equal(t, StatusAuthenticated, snap.Status)
		assert.True(t, snap.IsAuthenticated())
		require.NotNil(t, snap.User)
		assert.Equal(t, "admin", snap.User.Username)
		assert.Equal(t, models.RoleAdmin, snap.User.Role)
		assert.Equal(t, "abc", snap.Token)

		persisted, err := tokens.Load()
		require.NoError(t, err)
		assert.Equal(t, "abc", persisted)
	})

	t.Run("wrong password yields ErrInvalidCredentials", func(t *testing.T) {
		store, tokens, _ := newTestStore(t, defaultBackend())

		err := store.Login(context.Background(), api.Credentials{Username: "admin", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		snap := store.Snapshot()
		assert.Equal(t, StatusUnauthenticated, snap.Status)
		assert.Nil(t, snap.User)

		_, err = tokens.Load()
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("unknown username is indistinguishable from wrong password", func(t *testing.T) {
		store, _, _ := newTestStore(t, defaultBackend())

		wrongUser := store.Login(context.Background(), api.Credentials{Username: "nobody", Password: "admin123"})
		wrongPass := store.Login(context.Background(), api.Credentials{Username: "admin", Password: "nope"})

		assert.ErrorIs(t, wrongUser, ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		assert.Equal(t, wrongUser.Error(), wrongPass.Error())
	})

	t.Run("network failure propagates as NetworkError, not invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		tokens, err := NewTokenStore(t.TempDir())
		require.NoError(t, err)
		client := api.New(api.Config{BaseURL: server.URL, Timeout: time.Second}, tokens)
		store := NewStore(client, tokens)

		err = store.Login(context.Background(), api.Credentials{Username: "admin", Password: "admin123"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)

		var netErr *api.NetworkError
		assert.ErrorAs(t, err, &netErr)
	})
}

func TestStore_Initialize(t *testing.T) {
	t.Run("starts pending before Initialize", func(t *testing.T) {
		store, _, _ := newTestStore(t, defaultBackend())

		snap := store.Snapshot()
		assert.Equal(t, StatusPending, snap.Status)
		assert.False(t, snap.IsAuthenticated())
	})

	t.Run("valid persisted token restores the session", func(t *testing.T) {
		store, tokens, _ := newTestStore(t, defaultBackend())
		require.NoError(t, tokens.Save("abc"))

		store.Initialize(context.Background())

		snap := store.Snapshot()
		assert.Equal(t, StatusAuthenticated, snap.Status)
		require.NotNil(t, snap.User)
		assert.Equal(t, "admin", snap.User.Username)
	})

	t.Run("no persisted token lands unauthenticated", func(t *testing.T) {
		store, _, _ := newTestStore(t, defaultBackend())

		store.Initialize(context.Background())

		assert.Equal(t, StatusUnauthenticated, store.Snapshot().Status)
	})

	t.Run("rejected token is cleared from disk", func(t *testing.T) {
		store, tokens, _ := newTestStore(t, defaultBackend())
		require.NoError(t, tokens.Save("stale-token"))

		store.Initialize(context.Background())

		assert.Equal(t, StatusUnauthenticated, store.Snapshot().Status)
		_, err := tokens.Load()
		assert.ErrorIs(t, err, ErrNoToken)
	})
}

func TestStore_Logout(t *testing.T) {
	t.Run("clears state and persisted token", func(t *testing.T) {
		store, tokens, _ := newTestStore(t, defaultBackend())
		require.NoError(t, store.Login(context.Background(), api.Credentials{Username: "admin", Password: "admin123"}))

		store.Logout(context.Background())

		snap := store.Snapshot()
		assert.Equal(t, StatusUnauthenticated, snap.Status)
		assert.Nil(t, snap.User)
		assert.Empty(t, snap.Token)

		_, err := tokens.Load()
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("succeeds locally even when the backend call fails", func(t *testing.T) {
		backend := defaultBackend()
		backend.logoutCode = http.StatusInternalServerError
		store, tokens, _ := newTestStore(t, backend)
		require.NoError(t, store.Login(context.Background(), api.Credentials{Username: "admin", Password: "admin123"}))

		store.Logout(context.Background())

		assert.Equal(t, StatusUnauthenticated, store.Snapshot().Status)
		_, err := tokens.Load()
		assert.ErrorIs(t, err, ErrNoToken)
	})
}

func TestStore_HasRole(t *testing.T) {
	t.Run("false when not authenticated, for any role set", func(t *testing.T) {
		store, _, _ := newTestStore(t, defaultBackend())
		store.Initialize(context.Background())

		assert.False(t, store.HasRole(models.RoleAdmin))
		assert.False(t, store.HasRole(models.Roles()...))
		assert.False(t, store.HasRole())
	})

	t.Run("matches the logged-in user's role", func(t *testing.T) {
		store, _, _ := newTestStore(t, defaultBackend())
		require.NoError(t, store.Login(context.Background(), api.Credentials{Username: "admin", Password: "admin123"}))

		assert.True(t, store.HasRole(models.RoleAdmin))
		assert.True(t, store.HasRole(models.RoleDiretoria, models.RoleAdmin))
		assert.False(t, store.HasRole(models.RoleColaborador))
		assert.False(t, store.HasRole())
	})
}

func TestStore_UpdateUser(t *testing.T) {
	t.Run("replaces the user without touching auth state", func(t *testing.T) {
		store, _, _ := newTestStore(t, defaultBackend())
		require.NoError(t, store.Login(context.Background(), api.Credentials{Username: "admin", Password: "admin123"}))

		updated := models.User{ID: 1, Username: "admin", Email: "new@example.com", Role: models.RoleAdmin}
		store.UpdateUser(updated)

		snap := store.Snapshot()
		assert.Equal(t, StatusAuthenticated, snap.Status)
		assert.Equal(t, "abc", snap.Token)
		require.NotNil(t, snap.User)
		assert.Equal(t, "new@example.com", snap.User.Email)
	})
}

func TestSnapshot_Copy(t *testing.T) {
	t.Run("mutating a snapshot's user does not affect the store", func(t *testing.T) {
		store, _, _ := newTestStore(t, defaultBackend())
		require.NoError(t, store.Login(context.Background(), api.Credentials{Username: "admin", Password: "admin123"}))

		snap := store.Snapshot()
		snap.User.Username = "mutated"

		assert.Equal(t, "admin", store.Snapshot().User.Username)
	})
}
