package fbs

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2016, 3, 7, 9, 4, 5, 0, time.UTC)

type recordingObserver struct {
	mu      sync.Mutex
	results []string
}

func (o *recordingObserver) ObserveFBS(command string, result string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results = append(o.results, command+":"+result)
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	probe := mocks.NewMockReachabilityProbe(t)
	probe.EXPECT().Online(mock.Anything, server.URL).Return(true, nil)

	client, err := NewClient(domain.SessionConfig{
		Username: "kiosk",
		Password: "s3cret",
		Endpoint: server.URL,
		Agency:   "DK-775100",
		Location: "hb",
	}, probe, fixedClock{now: testNow})
	require.NoError(t, err)
	client.HTTPClient = server.Client()
	return client
}

func TestLoginWithValidPatron(t *testing.T) {
	t.Parallel()

	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "bibbox", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		body = string(raw)

		_, _ = w.Write([]byte("AO|AAvalid|BLY|CQY|"))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	result, err := client.Login(context.Background(), domain.Credentials{Username: "1234567890", Password: "1111"})
	require.NoError(t, err)

	assert.Equal(t, domain.LoginResult{Username: "1234567890", Allowed: true, Online: true}, result)
	assert.Equal(t,
		`<ns1:sip login="kiosk" password="s3cret" xmlns:ns1="http://axiell.com/Schema/sip.xsd">`+
			`<request>2300920160307    090405|AODK-775100|AA1234567890|AC|AD1111|</request></ns1:sip>`,
		body,
	)
}

func TestLoginOfflineSendsNothing(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	probe := mocks.NewMockReachabilityProbe(t)
	probe.EXPECT().Online(mock.Anything, server.URL).Return(false, nil).Times(2)

	client, err := NewClient(domain.SessionConfig{Endpoint: server.URL, Agency: "DK-775100"}, probe, fixedClock{now: testNow})
	require.NoError(t, err)
	client.HTTPClient = server.Client()

	result, err := client.Login(context.Background(), domain.Credentials{Username: "1234567890", Password: "1111"})
	require.NoError(t, err)
	assert.Equal(t, domain.LoginResult{Username: "1234567890", Allowed: true, Online: false}, result)

	_, err = client.Checkin(context.Background(), "5010")
	require.ErrorIs(t, err, domain.ErrOffline)
	assert.Zero(t, hits.Load())
}

func TestSendReturnsReachabilityFailure(t *testing.T) {
	t.Parallel()

	reachability := mocks.NewMockReachabilityProbe(t)
	reachability.EXPECT().Online(mock.Anything, "http://fbs.invalid").Return(false, errors.New("no route"))

	client, err := NewClient(domain.SessionConfig{Endpoint: "http://fbs.invalid"}, reachability, nil)
	require.NoError(t, err)

	_, err = client.Status(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrOffline)
	assert.Contains(t, err.Error(), "no route")
}

func TestLoginCanceledReachabilityIsNotAnOfflineLogin(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	reachability := mocks.NewMockReachabilityProbe(t)
	reachability.EXPECT().Online(mock.Anything, server.URL).Return(false, context.Canceled)

	client, err := NewClient(domain.SessionConfig{Endpoint: server.URL, Agency: "DK-775100"}, reachability, fixedClock{now: testNow})
	require.NoError(t, err)
	client.HTTPClient = server.Client()

	result, err := client.Login(context.Background(), domain.Credentials{Username: "1234567890", Password: "1111"})
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrOffline)
	assert.False(t, result.Allowed)
	assert.Zero(t, hits.Load())
}

func TestLoginWithWrongPinIsRemoteError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("24              00920160307    090405AODK-775100|AA1234567890|AEJane Doe|BLY|CQN|AFWrong pin|"))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	_, err := client.Login(context.Background(), domain.Credentials{Username: "1234567890", Password: "0000"})
	require.Error(t, err)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "Wrong pin", remoteErr.Message)
	assert.Equal(t, "N", remoteErr.Fields["CQ"])
}

func TestSendNonSuccessStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantRemote bool
	}{
		{name: "error body wins", status: http.StatusInternalServerError, body: "AO|AA1|BLN|AFUnknown patron|", wantRemote: true},
		{name: "empty body", status: http.StatusBadGateway, body: ""},
		{name: "html body", status: http.StatusServiceUnavailable, body: "<html>down</html>"},
		{name: "successful body", status: http.StatusInternalServerError, body: "AO|AA1|BLY|CQY|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			client := newTestClient(t, server)
			_, err := client.PatronStatus(context.Background(), domain.Credentials{Username: "1", Password: "2"})
			require.Error(t, err)

			if tt.wantRemote {
				var remoteErr *domain.RemoteError
				require.ErrorAs(t, err, &remoteErr)
				assert.Equal(t, tt.status, remoteErr.StatusCode)
				assert.Equal(t, "Unknown patron", remoteErr.Message)
				return
			}

			var transportErr *domain.TransportError
			require.ErrorAs(t, err, &transportErr)
			assert.Equal(t, tt.status, transportErr.StatusCode)
		})
	}
}

func TestSendMalformedReplyIsParseError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Internal gateway message"))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	_, err := client.Status(context.Background())

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "AO", parseErr.Expected)
}

func TestSendUnwrapsXMLReply(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
			`<ns1:sip xmlns:ns1="http://axiell.com/Schema/sip.xsd">` +
			`<response>98YYYNYN01000320160307    0904052.00AODK-775100|AMHovedbiblioteket|BXYYYYYYYYYYYYYYYY|</response></ns1:sip>`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	status, err := client.Status(context.Background())
	require.NoError(t, err)

	assert.True(t, status.Online)
	assert.Equal(t, "DK-775100", status.InstitutionID)
	assert.Equal(t, "Hovedbiblioteket", status.Fields["AM"])
}

func TestCheckoutMapsCirculationReply(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("121NUY20160307    090405AODK-775100|AA1234567890|AB5010|AJDune|AH20160404    000000|"))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	observer := &recordingObserver{}
	client.Observer = observer

	result, err := client.Checkout(context.Background(), domain.ItemRequest{
		Credentials:    domain.Credentials{Username: "1234567890", Password: "1111"},
		ItemIdentifier: "5010",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CirculationResult{
		ItemIdentifier: "5010",
		OK:             true,
		Title:          "Dune",
		DueDate:        "20160404    000000",
	}, result)
	assert.Equal(t, []string{"11:success"}, observer.results)
}

func TestCheckinRejectedByFBS(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("100NUN20160307    090405AODK-775100|AB5010|AFItem not checked out|"))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	observer := &recordingObserver{}
	client.Observer = observer

	_, err := client.Checkin(context.Background(), "5010")

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "Item not checked out", remoteErr.Message)
	assert.Equal(t, []string{"09:remote_error"}, observer.results)
}

func TestRenewAllSplitsItems(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("66100020001" + "20160307    090405" + "AODK-775100|BM5010|BM5011|BN5012|"))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	result, err := client.RenewAll(context.Background(), domain.Credentials{Username: "1234567890", Password: "1111"})
	require.NoError(t, err)

	assert.Equal(t, []string{"5010", "5011"}, result.Renewed)
	assert.Equal(t, []string{"5012"}, result.Unrenewed)
}

func TestSendTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(t, server)
	server.Close()

	_, err := client.Status(context.Background())

	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Zero(t, transportErr.StatusCode)
	assert.Error(t, transportErr.Unwrap())
}

func TestSendTimesOutWithoutCallerDeadline(t *testing.T) {
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

	client := newTestClient(t, server)
	client.RequestTimeout = 20 * time.Millisecond

	_, err := client.Status(context.Background())
	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClientValidatesArguments(t *testing.T) {
	t.Parallel()

	probe := mocks.NewMockReachabilityProbe(t)

	_, err := NewClient(domain.SessionConfig{}, probe, nil)
	require.ErrorIs(t, err, errEndpointRequired)

	_, err = NewClient(domain.SessionConfig{Endpoint: "http://fbs"}, nil, nil)
	require.ErrorIs(t, err, errNilProbe)
}
