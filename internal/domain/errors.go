package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOffline is returned when the reachability probe reports the FBS
	// endpoint as unreachable. No request was sent.
	ErrOffline        = errors.New("FBS is offline")
	ErrConfigNotFound = errors.New("config not found")
)

// TransportError covers failures of the HTTP exchange itself: dial errors,
// timeouts and non-success statuses without a parsable error body.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return "fbs transport: " + e.Err.Error()
	}
	return fmt.Sprintf("fbs transport: unexpected status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a reply that did not start with the expected field code
// or contained a malformed field.
type ParseError struct {
	Expected string
	Raw      string
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("parse fbs reply (expected %s): %s", e.Expected, e.Reason)
	}
	return fmt.Sprintf("parse fbs reply: expected first field %s", e.Expected)
}

// RemoteError is a well-formed reply in which FBS reported a business
// failure, e.g. an unknown patron or a wrong pin.
type RemoteError struct {
	Message    string
	StatusCode int
	Fields     map[string]string
}

func (e *RemoteError) Error() string {
	return e.Message
}

type TrackerBlockError struct {
	Username string
	Attempts int
}

func (e *TrackerBlockError) Error() string {
	return fmt.Sprintf("patron %s blocked after %d failed login attempts", maskPatronID(e.Username), e.Attempts)
}

func maskPatronID(id string) string {
	if len(id) <= 4 {
		return strings.Repeat("*", len(id))
	}
	return strings.Repeat("*", len(id)-4) + id[len(id)-4:]
}
