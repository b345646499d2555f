// Package proxy exposes the bus to the kiosk UI over a websocket and serves
// the operational endpoints of `bibbox serve`.
package proxy

import (
	"context"
	"errors"
	"io"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/bibbox-fbs/internal/bus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = (pongWait - writeWait) * 2 / 3

	maxFrameBytes = 64 << 10
)

// ErrReplyChannel is returned for frames whose reply channels do not belong
// to their event.
var ErrReplyChannel = errors.New("reply channels must be <event>.success* and <event>.error*")

type Server struct {
	bus      *bus.Bus
	registry *prometheus.Registry
	logger   *slog.Logger
	origins  []string
}

type Option func(*Server)

// WithAllowedOrigins accepts websocket upgrades from origins other than the
// proxy's own host, e.g. "http://kiosk.local:8080".
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = append(s.origins, origins...)
	}
}

func NewServer(b *bus.Bus, registry *prometheus.Registry, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{bus: b, registry: registry, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router serves /bus (websocket), /metrics and /healthz.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/bus", s.serveBus).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.serveHealth).Methods(http.MethodGet)
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	return r
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) serveBus(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: s.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	c := &connection{conn: conn, bus: s.bus, logger: s.logger}
	c.serve(r.Context())
}

// checkOrigin accepts clients without an Origin header, pages served from the
// proxy's own host and the configured origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || slices.Contains(s.origins, origin) {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if !strings.EqualFold(u.Host, r.Host) {
		s.logger.Warn("websocket origin refused", slog.String("origin", origin))
		return false
	}
	return true
}

type connection struct {
	conn   *websocket.Conn
	bus    *bus.Bus
	logger *slog.Logger

	writeMu  sync.Mutex
	inflight sync.WaitGroup
}

func (c *connection) serve(parent context.Context) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	defer func() {
		cancel()
		c.inflight.Wait()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	pinger := time.NewTicker(pingPeriod)
	defer pinger.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-pinger.C:
				c.writeMu.Lock()
				err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
				c.writeMu.Unlock()
				if err != nil {
					_ = c.conn.Close()
					return
				}
			}
		}
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !isExpectedCloseError(err) {
				c.logger.Warn("websocket read failed", slog.Any("error", err))
			}
			return
		}

		var req request
		if err := json.Unmarshal(data, &req); err != nil {
			c.logger.Warn("malformed bus frame", slog.Any("error", err))
			continue
		}

		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			c.handle(ctx, req)
		}()
	}
}

func (c *connection) handle(ctx context.Context, req request) {
	env := bus.NewEnvelope(req.Event, nil)

	payload, err := decodePayload(req.Event, req.Payload)
	if err != nil {
		c.write(reply{Event: replyEvent(req.Error, env.ErrorChannel), Payload: errorPayload{Message: err.Error()}})
		return
	}
	env.Payload = payload

	if req.Success != "" || req.Error != "" {
		if !strings.HasPrefix(req.Success, req.Event+".success") || !strings.HasPrefix(req.Error, req.Event+".error") {
			err := fmt.Errorf("%w: %s", ErrReplyChannel, req.Event)
			c.write(reply{Event: replyEvent(req.Error, env.ErrorChannel), Payload: errorPayload{Message: err.Error()}})
			return
		}
		env.SuccessChannel = req.Success
		env.ErrorChannel = req.Error
	}

	value, err := c.bus.Request(ctx, req.Event, env)
	if err != nil {
		c.write(reply{Event: env.ErrorChannel, Payload: errorPayload{Message: err.Error()}})
		return
	}
	c.write(reply{Event: env.SuccessChannel, Payload: value})
}

// replyEvent names the frame's own error channel when it sent one. It is only
// written back to the socket, never emitted on the bus.
func replyEvent(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}

func (c *connection) write(r reply) {
	data, err := json.Marshal(r)
	if err != nil {
		c.logger.Error("encode bus reply", slog.Any("error", err))
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.logger.Warn("websocket write failed", slog.Any("error", err))
	}
}

func isExpectedCloseError(err error) bool {
	return errors.Is(err, io.EOF) || websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
		websocket.CloseAbnormalClosure,
	)
}

// ListenAndServe runs the proxy on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("proxy listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
