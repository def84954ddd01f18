package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectavoz/conectavoz/internal/models"
)

func staticToken(token string) TokenSource {
	return TokenSourceFunc(func() (string, bool) { return token, token != "" })
}

func TestClient_Headers(t *testing.T) {
	t.Run("attaches token with Token scheme", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, staticToken("abc123"))
		err := client.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Token abc123", gotAuth)
	})

	t.Run("omits Authorization when no token available", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, staticToken(""))
		err := client.Health(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("omits Authorization with nil token source", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, nil)
		err := client.Health(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("sets a request ID on every request", func(t *testing.T) {
		ids := map[string]bool{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ids[r.Header.Get("X-Request-Id")] = true
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, nil)
		require.NoError(t, client.Health(context.Background()))
		require.NoError(t, client.Health(context.Background()))

		assert.Len(t, ids, 2)
		assert.False(t, ids[""])
	})
}

func TestClient_Login(t *testing.T) {
	t.Run("returns user and token from auth response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login/", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token":"abc","user":{"id":1,"username":"admin","role":"admin"}}`))
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, nil)
		user, token, err := client.Login(context.Background(), Credentials{Username: "admin", Password: "admin123"})
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
		assert.Equal(t, "admin", user.Username)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("rejection surfaces as HTTPError with detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Invalid credentials."}`))
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, nil)
		_, _, err := client.Login(context.Background(), Credentials{Username: "x", Password: "y"})
		require.Error(t, err)
		assert.True(t, IsStatus(err, http.StatusBadRequest))
		assert.Equal(t, "Invalid credentials.", Message(err))
	})
}

func TestClient_NetworkFailure(t *testing.T) {
	t.Run("unreachable server yields NetworkError", func(t *testing.T) {
		// Point at a server that is already closed.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := New(Config{BaseURL: server.URL, Timeout: time.Second}, nil)
		err := client.Health(context.Background())
		require.Error(t, err)

		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.NotEmpty(t, netErr.URL)
		assert.False(t, IsStatus(err, http.StatusInternalServerError))
	})
}

func TestClient_Defaults(t *testing.T) {
	t.Run("empty config falls back to defaults", func(t *testing.T) {
		client := New(Config{}, nil)
		assert.Equal(t, "http://localhost:8000/api/v1", client.BaseURL())
	})
}
