package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerBlockErrorMasksPatron(t *testing.T) {
	err := &TrackerBlockError{Username: "1234567890", Attempts: 5}

	assert.Equal(t, "patron ******7890 blocked after 5 failed login attempts", err.Error())
	assert.NotContains(t, err.Error(), "123456")

	short := &TrackerBlockError{Username: "123", Attempts: 1}
	assert.Equal(t, "patron *** blocked after 1 failed login attempts", short.Error())
}

func TestTransportErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("checkout: %w", &TransportError{Err: context.DeadlineExceeded})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "fbs transport: context deadline exceeded", transportErr.Error())

	status := &TransportError{StatusCode: 502}
	assert.Equal(t, "fbs transport: unexpected status 502", status.Error())
	assert.Nil(t, errors.Unwrap(status))
}

func TestParseErrorMessage(t *testing.T) {
	assert.Equal(t, "parse fbs reply: expected first field AO", (&ParseError{Expected: "AO"}).Error())
	assert.Equal(t,
		"parse fbs reply (expected AO): malformed field X",
		(&ParseError{Expected: "AO", Reason: "malformed field X"}).Error(),
	)
}

func TestSessionConfigComplete(t *testing.T) {
	assert.True(t, SessionConfig{Endpoint: "https://fbs.example", Agency: "DK-775100"}.Complete())
	assert.False(t, SessionConfig{Endpoint: "https://fbs.example"}.Complete())
	assert.False(t, SessionConfig{Agency: "DK-775100"}.Complete())
}
