package fbs

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
	"github.com/bnema/bibbox-fbs/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) *bus.Bus {
	t.Helper()

	b := bus.New(bus.WithRequestTimeout(time.Second))
	t.Cleanup(b.Close)
	return b
}

func TestRegisterServesCheckin(t *testing.T) {
	t.Parallel()

	b := newTestBus(t)
	circulation := mocks.NewMockCirculation(t)
	circulation.EXPECT().Checkin(mock.Anything, "5010").Return(domain.CirculationResult{ItemIdentifier: "5010", OK: true}, nil)
	Register(b, circulation)

	env := bus.NewKeyedEnvelope("fbs.checkin", "5010", domain.ItemRequest{ItemIdentifier: "5010"})
	result, err := bus.Call[domain.CirculationResult](context.Background(), b, ports.ChannelCheckin, env)
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestRegisterRejectsOnFailure(t *testing.T) {
	t.Parallel()

	b := newTestBus(t)
	circulation := mocks.NewMockCirculation(t)
	circulation.EXPECT().Login(mock.Anything, domain.Credentials{Username: "1234567890", Password: "0000"}).
		Return(domain.LoginResult{}, &domain.RemoteError{Message: "Wrong pin"})
	Register(b, circulation)

	env := bus.NewEnvelope(ports.ChannelAuthenticate, domain.Credentials{Username: "1234567890", Password: "0000"})
	_, err := b.Request(context.Background(), ports.ChannelAuthenticate, env)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "Wrong pin", remoteErr.Message)
}

func TestRegisterLeavesLoginPolicyChannelFree(t *testing.T) {
	t.Parallel()

	b := newTestBus(t)
	Register(b, mocks.NewMockCirculation(t))

	assert.Zero(t, b.Listeners(ports.ChannelLogin))
	assert.Equal(t, 1, b.Listeners(ports.ChannelAuthenticate))
}

func TestRegisterRejectsForeignPayload(t *testing.T) {
	t.Parallel()

	b := newTestBus(t)
	Register(b, mocks.NewMockCirculation(t))

	env := bus.NewEnvelope("fbs.renew", "not-a-request")
	_, err := b.Request(context.Background(), ports.ChannelRenew, env)
	require.ErrorIs(t, err, bus.ErrUnexpectedPayload)
}

func TestRegisterUnregisters(t *testing.T) {
	t.Parallel()

	b := newTestBus(t)
	off := Register(b, mocks.NewMockCirculation(t))
	assert.Equal(t, 1, b.Listeners(ports.ChannelStatus))

	off()
	assert.Zero(t, b.Listeners(ports.ChannelStatus))
	assert.Zero(t, b.Listeners(ports.ChannelBlock))
}

func TestBusProbeAsksReachabilityProvider(t *testing.T) {
	t.Parallel()

	b := newTestBus(t)
	b.Handle(ports.ChannelOnline, func(_ context.Context, env bus.Envelope) (any, error) {
		req, err := bus.PayloadAs[domain.OnlineRequest](env)
		if err != nil {
			return nil, err
		}
		return req.URL == "https://fbs.example/sip2", nil
	})

	online, err := BusProbe{Bus: b}.Online(context.Background(), "https://fbs.example/sip2")
	require.NoError(t, err)
	assert.True(t, online)

	online, err = BusProbe{Bus: b}.Online(context.Background(), "https://other.example")
	require.NoError(t, err)
	assert.False(t, online)
}

func TestLoadSessionConfig(t *testing.T) {
	t.Parallel()

	b := newTestBus(t)
	want := domain.SessionConfig{Username: "kiosk", Endpoint: "https://fbs.example/sip2", Agency: "DK-775100"}
	b.Handle(ports.ChannelConfigFBS, func(context.Context, bus.Envelope) (any, error) {
		return want, nil
	})

	got, err := LoadSessionConfig(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
