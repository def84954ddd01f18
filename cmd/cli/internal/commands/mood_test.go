package commands

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conectavoz/conectavoz/internal/api"
)

func TestCheckinError(t *testing.T) {
	t.Run("duplicate-day conflict gets its own message", func(t *testing.T) {
		err := checkinError(&api.HTTPError{Status: http.StatusConflict, Detail: "Check-in already submitted today."})
		assert.EqualError(t, err, "check-in already done today")
	})

	t.Run("other HTTP failures show the backend detail", func(t *testing.T) {
		err := checkinError(&api.HTTPError{Status: http.StatusBadRequest, Detail: "Mood level out of range."})
		assert.EqualError(t, err, "check-in failed: Mood level out of range.")
	})

	t.Run("network failures show the connectivity message", func(t *testing.T) {
		err := checkinError(&api.NetworkError{URL: "http://x", Err: errors.New("refused")})
		assert.EqualError(t, err, "check-in failed: could not reach the server, check your connection")
	})
}

func TestViewError(t *testing.T) {
	t.Run("wraps the user-facing message, not the raw error", func(t *testing.T) {
		err := viewError("failed to load users", &api.HTTPError{Status: http.StatusInternalServerError})
		assert.EqualError(t, err, "failed to load users: request failed, try again later")
	})
}
