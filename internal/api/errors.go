package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// The client never lets callers probe loose error shapes; every failure
// is one of three concrete types and callers switch on them.

// NetworkError means no HTTP response was received at all.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response. Body holds the parsed JSON error body
// (empty when the body was absent or not JSON); Detail is the backend's
// "detail" field when present.
type HTTPError struct {
	Status int
	Body   map[string]any
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// ValidationError is a 4xx response whose body is the backend's
// field -> messages map.
type ValidationError struct {
	Status int
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.fieldSummary())
}

func (e *ValidationError) fieldSummary() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], "; "))
	}
	return strings.Join(parts, ", ")
}

// decodeError normalizes a non-2xx response into one of the tagged error
// types. An unparseable body degrades to an HTTPError with an empty body,
// never to a decoding error.
func decodeError(status int, body []byte) error {
	parsed := map[string]any{}
	_ = json.Unmarshal(body, &parsed)

	detail, _ := parsed["detail"].(string)

	if detail == "" && len(parsed) > 0 {
		if fields, ok := asFieldErrors(parsed); ok {
			return &ValidationError{Status: status, Fields: fields}
		}
	}

	return &HTTPError{Status: status, Body: parsed, Detail: detail}
}

// asFieldErrors recognises the DRF validation shape: every value is a
// list of message strings.
func asFieldErrors(parsed map[string]any) (map[string][]string, bool) {
	fields := make(map[string][]string, len(parsed))
	for name, value := range parsed {
		list, ok := value.([]any)
		if !ok {
			return nil, false
		}
		messages := make([]string, 0, len(list))
		for _, item := range list {
			msg, ok := item.(string)
			if !ok {
				return nil, false
			}
			messages = append(messages, msg)
		}
		fields[name] = messages
	}
	return fields, true
}

// IsStatus reports whether err is an HTTP-level failure with the given
// status code.
func IsStatus(err error, status int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status == status
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Status == status
	}
	return false
}

// Message returns the user-facing message for a request failure: the
// backend's detail verbatim when present, a generic fallback otherwise.
func Message(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "could not reach the server, check your connection"
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.fieldSummary()
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Detail != "" {
			return httpErr.Detail
		}
		return "request failed, try again later"
	}

	if err != nil {
		return err.Error()
	}
	return ""
}
