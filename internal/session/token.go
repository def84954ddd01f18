package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNoToken is returned when no token has been persisted.
var ErrNoToken = errors.New("no token stored")

const tokenFile = "token"

// TokenStore persists the auth token on the local filesystem. The token
// is the only state that survives a restart; its presence is the sole
// trigger for attempted auto-login at startup.
type TokenStore struct {
	baseDir string
}

// NewTokenStore creates a token store.
// If baseDir is empty, uses ~/.conectavoz/
func NewTokenStore(baseDir string) (*TokenStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".conectavoz")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	log.Debug().Str("baseDir", baseDir).Msg("token store initialized")

	return &TokenStore{baseDir: baseDir}, nil
}

// Load reads the persisted token. Returns ErrNoToken when absent.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Save writes the token atomically with owner-only permissions.
func (s *TokenStore) Save(token string) error {
	tempPath := s.path() + ".tmp"

	if err := os.WriteFile(tempPath, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}

	if err := os.Rename(tempPath, s.path()); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save token: %w", err)
	}

	log.Debug().Msg("token persisted")
	return nil
}

// Clear removes the persisted token. Clearing an absent token is not an
// error.
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// Token implements api.TokenSource by reading the persisted token on
// each request, mirroring how the original client consulted durable
// storage per call.
func (s *TokenStore) Token() (string, bool) {
	token, err := s.Load()
	if err != nil {
		return "", false
	}
	return token, true
}

func (s *TokenStore) path() string {
	return filepath.Join(s.baseDir, tokenFile)
}
