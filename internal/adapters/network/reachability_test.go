package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlineAnyStatusCounts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	t.Cleanup(server.Close)

	checker := NewChecker(time.Second, 0)
	checker.HTTPClient = server.Client()

	online, err := checker.Online(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, online)
}

func TestOnlineUnreachableIsOffline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	online, err := NewChecker(time.Second, 0).Online(context.Background(), url)
	require.NoError(t, err)
	assert.False(t, online)
}

func TestOnlineSlowEndpointIsOffline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	checker := NewChecker(20*time.Millisecond, 0)
	checker.HTTPClient = server.Client()

	online, err := checker.Online(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, online)
}

func TestOnlineCachesAnswers(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	checker := NewChecker(time.Second, time.Minute)
	checker.HTTPClient = server.Client()

	for range 3 {
		online, err := checker.Online(context.Background(), server.URL)
		require.NoError(t, err)
		assert.True(t, online)
	}
	assert.Equal(t, int32(1), hits.Load())

	checker.Invalidate()
	_, err := checker.Online(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestOnlineCanceledCallerIsNotCached(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	checker := NewChecker(time.Second, time.Minute)
	checker.HTTPClient = server.Client()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	online, err := checker.Online(ctx, server.URL)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, online)

	online, err = checker.Online(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, online)
	assert.Equal(t, int32(1), hits.Load())
}

func TestOnlineCallerDeadlineMidRequestIsAnError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	checker := NewChecker(time.Second, time.Minute)
	checker.HTTPClient = server.Client()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := checker.Online(ctx, server.URL)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, checker.cache.Get(server.URL))
}

func TestRegisterAnswersOnBus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	t.Cleanup(server.Close)

	b := bus.New(bus.WithRequestTimeout(time.Second))
	t.Cleanup(b.Close)

	checker := NewChecker(time.Second, 0)
	checker.HTTPClient = server.Client()
	checker.Register(b)

	env := bus.NewEnvelope("fbs.sip2.online", domain.OnlineRequest{URL: server.URL})
	online, err := bus.Call[bool](context.Background(), b, ports.ChannelOnline, env)
	require.NoError(t, err)
	assert.True(t, online)
}
