// Package network answers reachability questions for the other adapters.
package network

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
)

const DefaultProbeTimeout = 3 * time.Second

// Checker reports a URL as online when it answers a HEAD request with any
// HTTP status before the probe timeout.
type Checker struct {
	HTTPClient   *http.Client
	ProbeTimeout time.Duration
	Logger       *slog.Logger

	cache *ttlcache.Cache[string, bool]
}

var _ ports.ReachabilityProbe = (*Checker)(nil)

// NewChecker returns a Checker. A positive cacheTTL remembers each answer for
// that long.
func NewChecker(probeTimeout, cacheTTL time.Duration) *Checker {
	c := &Checker{ProbeTimeout: probeTimeout}
	if cacheTTL > 0 {
		c.cache = ttlcache.New[string, bool](
			ttlcache.WithTTL[string, bool](cacheTTL),
			ttlcache.WithDisableTouchOnHit[string, bool](),
		)
	}
	return c
}

// Online probes url. A caller context that is done yields its error rather
// than an answer, and nothing is cached for it.
func (c *Checker) Online(ctx context.Context, url string) (bool, error) {
	return c.online(ctx, url, c.ProbeTimeout)
}

func (c *Checker) online(ctx context.Context, url string, timeout time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.cache != nil {
		if item := c.cache.Get(url); item != nil {
			return item.Value(), nil
		}
	}

	online := c.probe(ctx, url, timeout)
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if c.cache != nil {
		c.cache.Set(url, online, ttlcache.DefaultTTL)
	}
	return online, nil
}

func (c *Checker) probe(ctx context.Context, url string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		c.logger().Warn("reachability probe failed", slog.String("url", url), slog.Any("error", err))
		return false
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.logger().Info("endpoint offline", slog.String("url", url), slog.Any("error", err))
		return false
	}
	_ = resp.Body.Close()

	return true
}

// Invalidate forgets every cached answer.
func (c *Checker) Invalidate() {
	if c.cache != nil {
		c.cache.DeleteAll()
	}
}

// Register serves network.online on b.
func (c *Checker) Register(b *bus.Bus) func() {
	return b.Handle(ports.ChannelOnline, func(ctx context.Context, env bus.Envelope) (any, error) {
		req, err := bus.PayloadAs[domain.OnlineRequest](env)
		if err != nil {
			return nil, err
		}
		timeout := c.ProbeTimeout
		if req.Timeout > 0 {
			timeout = req.Timeout
		}
		return c.online(ctx, req.URL, timeout)
	})
}

func (c *Checker) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
