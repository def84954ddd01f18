package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeError(t *testing.T) {
	t.Run("detail field becomes HTTPError detail", func(t *testing.T) {
		err := decodeError(http.StatusConflict, []byte(`{"detail":"Check-in already submitted today."}`))

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "Check-in already submitted today.", httpErr.Detail)
	})

	t.Run("field error map becomes ValidationError", func(t *testing.T) {
		body := []byte(`{"username":["This field is required."],"email":["Enter a valid email address.","Already in use."]}`)
		err := decodeError(http.StatusBadRequest, body)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, http.StatusBadRequest, valErr.Status)
		assert.Equal(t, []string{"This field is required."}, valErr.Fields["username"])
		assert.Len(t, valErr.Fields["email"], 2)
	})

	t.Run("mixed body is not a ValidationError", func(t *testing.T) {
		body := []byte(`{"username":["required"],"code":42}`)
		err := decodeError(http.StatusBadRequest, body)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		var valErr *ValidationError
		assert.False(t, errors.As(err, &valErr))
	})

	t.Run("non-JSON body degrades to bare HTTPError", func(t *testing.T) {
		err := decodeError(http.StatusBadGateway, []byte(`<html>502</html>`))

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadGateway, httpErr.Status)
		assert.Empty(t, httpErr.Detail)
		assert.Empty(t, httpErr.Body)
	})

	t.Run("empty body degrades to bare HTTPError", func(t *testing.T) {
		err := decodeError(http.StatusInternalServerError, nil)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	})
}

func TestIsStatus(t *testing.T) {
	t.Run("matches HTTPError status", func(t *testing.T) {
		err := decodeError(http.StatusConflict, []byte(`{"detail":"already done"}`))
		assert.True(t, IsStatus(err, http.StatusConflict))
		assert.False(t, IsStatus(err, http.StatusNotFound))
	})

	t.Run("matches ValidationError status", func(t *testing.T) {
		err := decodeError(http.StatusBadRequest, []byte(`{"title":["required"]}`))
		assert.True(t, IsStatus(err, http.StatusBadRequest))
	})

	t.Run("false for network and plain errors", func(t *testing.T) {
		assert.False(t, IsStatus(&NetworkError{URL: "http://x", Err: errors.New("refused")}, http.StatusNotFound))
		assert.False(t, IsStatus(errors.New("boom"), http.StatusNotFound))
		assert.False(t, IsStatus(nil, http.StatusNotFound))
	})
}

func TestMessage(t *testing.T) {
	t.Run("network error gets the connectivity message", func(t *testing.T) {
		err := &NetworkError{URL: "http://x", Err: errors.New("connection refused")}
		assert.Equal(t, "could not reach the server, check your connection", Message(err))
	})

	t.Run("backend detail is passed through verbatim", func(t *testing.T) {
		err := decodeError(http.StatusForbidden, []byte(`{"detail":"You do not have permission."}`))
		assert.Equal(t, "You do not have permission.", Message(err))
	})

	t.Run("HTTP error without detail gets the generic message", func(t *testing.T) {
		err := decodeError(http.StatusInternalServerError, nil)
		assert.Equal(t, "request failed, try again later", Message(err))
	})

	t.Run("validation errors list fields in stable order", func(t *testing.T) {
		err := decodeError(http.StatusBadRequest, []byte(`{"b":["two"],"a":["one"]}`))
		assert.Equal(t, "a: one, b: two", Message(err))
	})
}
