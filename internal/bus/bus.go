// Package bus is an in-process publish/subscribe bus. Static handlers serve
// generic channels such as "fbs.checkout"; callers correlate replies through
// per-call success and error channels (see Envelope and Request).
package bus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const DefaultRequestTimeout = 30 * time.Second

var (
	// ErrTimeout is returned by Request when no reply arrived before the
	// request timeout. The call is abandoned and its listeners removed.
	ErrTimeout   = errors.New("bus request timed out")
	ErrNoHandler = errors.New("no handler registered")
	ErrClosed    = errors.New("bus closed")
)

type Handler func(ctx context.Context, payload any)

// Observer receives the outcome of every Request.
type Observer interface {
	ObserveRequest(channel string, outcome Outcome, elapsed time.Duration)
}

type Outcome string

const (
	OutcomeResolved  Outcome = "resolved"
	OutcomeRejected  Outcome = "rejected"
	OutcomeAbandoned Outcome = "abandoned"
	OutcomeCanceled  Outcome = "canceled"
	OutcomeClosed    Outcome = "closed"
)

type subscription struct {
	id      uint64
	handler Handler
	once    bool
}

type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[string][]subscription
	closed   bool
	inflight sync.WaitGroup

	pending *ttlcache.Cache[string, *call]
	calls   atomic.Uint64

	timeout  time.Duration
	logger   *slog.Logger
	observer Observer
}

type Option func(*Bus)

func WithRequestTimeout(timeout time.Duration) Option {
	return func(b *Bus) {
		if timeout > 0 {
			b.timeout = timeout
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(b *Bus) {
		b.observer = observer
	}
}

func New(opts ...Option) *Bus {
	b := &Bus{
		handlers: map[string][]subscription{},
		timeout:  DefaultRequestTimeout,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.pending = ttlcache.New[string, *call](
		ttlcache.WithTTL[string, *call](b.timeout),
	)
	b.pending.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *call]) {
		if reason == ttlcache.EvictionReasonExpired {
			item.Value().settle(result{err: ErrTimeout, outcome: OutcomeAbandoned})
		}
	})
	go b.pending.Start()

	return b
}

// On registers a long-lived handler on name. The returned func removes it.
func (b *Bus) On(name string, handler Handler) func() {
	return b.subscribe(name, handler, false)
}

// Once registers a handler that is delivered at most one event and then
// removed. The returned func removes it if it has not fired yet.
func (b *Bus) Once(name string, handler Handler) func() {
	return b.subscribe(name, handler, true)
}

func (b *Bus) subscribe(name string, handler Handler, once bool) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[name] = append(b.handlers[name], subscription{id: id, handler: handler, once: once})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.remove(name, id)
	}
}

func (b *Bus) remove(name string, id uint64) {
	subs := b.handlers[name]
	for i, sub := range subs {
		if sub.id != id {
			continue
		}
		kept := make([]subscription, 0, len(subs)-1)
		kept = append(kept, subs[:i]...)
		kept = append(kept, subs[i+1:]...)
		if len(kept) == 0 {
			delete(b.handlers, name)
		} else {
			b.handlers[name] = kept
		}
		return
	}
}

// Emit delivers payload to every handler on name, each in its own goroutine.
// One-shot handlers are removed before delivery. It returns the number of
// handlers reached.
func (b *Bus) Emit(ctx context.Context, name string, payload any) int {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		b.logger.Debug("bus closed, event dropped", slog.String("event", name))
		return 0
	}

	subs := b.handlers[name]
	targets := make([]Handler, 0, len(subs))
	kept := make([]subscription, 0, len(subs))
	for _, sub := range subs {
		targets = append(targets, sub.handler)
		if !sub.once {
			kept = append(kept, sub)
		}
	}
	if len(kept) == 0 {
		delete(b.handlers, name)
	} else {
		b.handlers[name] = kept
	}
	b.inflight.Add(len(targets))
	b.mu.Unlock()

	if len(targets) == 0 {
		b.logger.Debug("no listener for event", slog.String("event", name))
		return 0
	}

	for _, handler := range targets {
		go func(handler Handler) {
			defer b.inflight.Done()
			handler(ctx, payload)
		}(handler)
	}

	return len(targets)
}

// Listeners reports how many handlers are registered on name.
func (b *Bus) Listeners(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[name])
}

// Pending reports the number of requests awaiting a reply.
func (b *Bus) Pending() int {
	return b.pending.Len()
}

// Close stops accepting events, fails every pending Request with ErrClosed
// and waits for running handlers.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	// Replies emitted from here on are dropped, and the janitor that would
	// time the calls out stops below.
	b.pending.Range(func(item *ttlcache.Item[string, *call]) bool {
		item.Value().settle(result{err: ErrClosed, outcome: OutcomeClosed})
		return true
	})

	b.inflight.Wait()
	b.pending.Stop()
}

type result struct {
	value   any
	err     error
	outcome Outcome
}

type call struct {
	done chan result
}

func newCall() *call {
	return &call{done: make(chan result, 1)}
}

// settle keeps the first result; later ones are dropped.
func (c *call) settle(r result) {
	select {
	case c.done <- r:
	default:
	}
}

// Request emits env on channel and blocks until one of its reply channels
// fires, ctx is done or the request timeout elapses. Both reply listeners are
// removed when Request returns.
func (b *Bus) Request(ctx context.Context, channel string, env Envelope) (any, error) {
	started := time.Now()
	c := newCall()

	cancelSuccess := b.Once(env.SuccessChannel, func(_ context.Context, payload any) {
		c.settle(result{value: payload, outcome: OutcomeResolved})
	})
	cancelError := b.Once(env.ErrorChannel, func(_ context.Context, payload any) {
		c.settle(result{err: asError(payload), outcome: OutcomeRejected})
	})

	key := env.SuccessChannel + "#" + strconv.FormatUint(b.calls.Add(1), 10)
	b.pending.Set(key, c, ttlcache.DefaultTTL)

	defer func() {
		cancelSuccess()
		cancelError()
		b.pending.Delete(key)
	}()

	if b.Emit(ctx, channel, env) == 0 {
		b.observe(channel, OutcomeRejected, started)
		if b.isClosed() {
			return nil, ErrClosed
		}
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, channel)
	}

	select {
	case r := <-c.done:
		b.observe(channel, r.outcome, started)
		if r.outcome == OutcomeAbandoned {
			b.logger.Warn("bus request abandoned", slog.String("channel", channel), slog.Duration("timeout", b.timeout))
		}
		return r.value, r.err
	case <-ctx.Done():
		b.observe(channel, OutcomeCanceled, started)
		return nil, ctx.Err()
	}
}

// Resolve publishes value on the success channel of env.
func (b *Bus) Resolve(ctx context.Context, env Envelope, value any) {
	b.Emit(ctx, env.SuccessChannel, value)
}

// Reject publishes err on the error channel of env.
func (b *Bus) Reject(ctx context.Context, env Envelope, err error) {
	b.Emit(ctx, env.ErrorChannel, err)
}

func (b *Bus) isClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

func (b *Bus) observe(channel string, outcome Outcome, started time.Time) {
	if b.observer != nil {
		b.observer.ObserveRequest(channel, outcome, time.Since(started))
	}
}

func asError(payload any) error {
	switch v := payload.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	case nil:
		return errors.New("request failed")
	default:
		return fmt.Errorf("request failed: %v", v)
	}
}
