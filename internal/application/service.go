package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
	"github.com/bnema/bibbox-fbs/internal/tracker"
)

var ErrNotLoggedIn = errors.New("no patron logged in")

// LoginRecorder receives login policy events.
type LoginRecorder interface {
	LoginFailed()
	PatronBlocked(ok bool)
	OfflineLogin()
}

type nopRecorder struct{}

func (nopRecorder) LoginFailed()       {}
func (nopRecorder) PatronBlocked(bool) {}
func (nopRecorder) OfflineLogin()      {}

// Service is the kiosk side of the bus: it issues fbs.* requests, keeps the
// credentials of the logged in patron and applies the failed login policy.
type Service struct {
	bus         *bus.Bus
	tracker     *tracker.Tracker
	blockReason string
	recorder    LoginRecorder
	logger      *slog.Logger

	mu      sync.RWMutex
	session *domain.Credentials
}

type Option func(*Service)

func WithRecorder(recorder LoginRecorder) Option {
	return func(s *Service) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(b *bus.Bus, t *tracker.Tracker, blockReason string, opts ...Option) *Service {
	if t == nil {
		t = tracker.New(tracker.DefaultMaxAttempts)
	}

	s := &Service{
		bus:         b,
		tracker:     t,
		blockReason: blockReason,
		recorder:    nopRecorder{},
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates the patron. Rejected credentials count against the
// patron; reaching the limit blocks the patron card in FBS and yields a
// *domain.TrackerBlockError. Other failures are not counted.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	if s.tracker.Check(creds.Username) {
		return domain.LoginResult{}, s.block(ctx, creds.Username)
	}

	env := bus.NewEnvelope(ports.ChannelAuthenticate, creds)
	result, err := bus.Call[domain.LoginResult](ctx, s.bus, ports.ChannelAuthenticate, env)
	if err != nil {
		var remoteErr *domain.RemoteError
		if !errors.As(err, &remoteErr) {
			return domain.LoginResult{}, fmt.Errorf("login: %w", err)
		}

		s.recorder.LoginFailed()
		attempts := s.tracker.Add(creds.Username)
		s.logger.Info("login rejected", slog.Int("attempts", attempts), slog.Int("max", s.tracker.Max()))
		if attempts < s.tracker.Max() {
			return domain.LoginResult{}, fmt.Errorf("login: %w", err)
		}
		return domain.LoginResult{}, s.block(ctx, creds.Username)
	}

	if !result.Online {
		s.recorder.OfflineLogin()
	}
	s.tracker.Clear(creds.Username)

	s.mu.Lock()
	s.session = &creds
	s.mu.Unlock()

	return result, nil
}

// Register serves fbs.login with Login so bus clients, the UI proxy
// included, go through the failed login policy. The returned func
// unregisters it.
func (s *Service) Register() func() {
	return s.bus.Handle(ports.ChannelLogin, func(ctx context.Context, env bus.Envelope) (any, error) {
		creds, err := bus.PayloadAs[domain.Credentials](env)
		if err != nil {
			return nil, err
		}
		return s.Login(ctx, creds)
	})
}

func (s *Service) block(ctx context.Context, username string) error {
	blockErr := &domain.TrackerBlockError{Username: username, Attempts: s.tracker.Attempts(username)}

	err := s.tracker.Block(ctx, username, func(ctx context.Context) error {
		_, err := s.Block(ctx, domain.BlockRequest{Username: username, Reason: s.blockReason})
		return err
	})
	switch {
	case err == nil:
		s.recorder.PatronBlocked(true)
		s.logger.Warn("patron blocked", slog.Int("attempts", blockErr.Attempts))
		return blockErr
	case errors.Is(err, tracker.ErrBlockInProgress):
		return errors.Join(blockErr, err)
	default:
		s.recorder.PatronBlocked(false)
		s.logger.Error("block patron failed", slog.Any("error", err))
		return errors.Join(blockErr, err)
	}
}

func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

func (s *Service) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

func (s *Service) credentials() (domain.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return domain.Credentials{}, ErrNotLoggedIn
	}
	return *s.session, nil
}

func (s *Service) LibraryStatus(ctx context.Context) (domain.LibraryStatus, error) {
	env := bus.NewEnvelope(ports.ChannelStatus, nil)
	status, err := bus.Call[domain.LibraryStatus](ctx, s.bus, ports.ChannelStatus, env)
	if err != nil {
		return domain.LibraryStatus{}, fmt.Errorf("library status: %w", err)
	}
	return status, nil
}

func (s *Service) Patron(ctx context.Context) (domain.Patron, error) {
	creds, err := s.credentials()
	if err != nil {
		return domain.Patron{}, err
	}

	env := bus.NewEnvelope(ports.ChannelPatron, creds)
	patron, err := bus.Call[domain.Patron](ctx, s.bus, ports.ChannelPatron, env)
	if err != nil {
		return domain.Patron{}, fmt.Errorf("patron: %w", err)
	}
	return patron, nil
}

func (s *Service) Checkout(ctx context.Context, itemIdentifier string) (domain.CirculationResult, error) {
	return s.itemCall(ctx, ports.ChannelCheckout, itemIdentifier)
}

func (s *Service) Renew(ctx context.Context, itemIdentifier string) (domain.CirculationResult, error) {
	return s.itemCall(ctx, ports.ChannelRenew, itemIdentifier)
}

// Checkin needs no logged in patron.
func (s *Service) Checkin(ctx context.Context, itemIdentifier string) (domain.CirculationResult, error) {
	env := bus.NewKeyedEnvelope(ports.ChannelCheckin, itemIdentifier, domain.ItemRequest{ItemIdentifier: itemIdentifier})
	result, err := bus.Call[domain.CirculationResult](ctx, s.bus, ports.ChannelCheckin, env)
	if err != nil {
		return domain.CirculationResult{}, fmt.Errorf("checkin %s: %w", itemIdentifier, err)
	}
	return result, nil
}

func (s *Service) itemCall(ctx context.Context, channel, itemIdentifier string) (domain.CirculationResult, error) {
	creds, err := s.credentials()
	if err != nil {
		return domain.CirculationResult{}, err
	}

	req := domain.ItemRequest{Credentials: creds, ItemIdentifier: itemIdentifier}
	env := bus.NewKeyedEnvelope(channel, itemIdentifier, req)
	result, err := bus.Call[domain.CirculationResult](ctx, s.bus, channel, env)
	if err != nil {
		return domain.CirculationResult{}, fmt.Errorf("%s %s: %w", channel, itemIdentifier, err)
	}
	return result, nil
}

func (s *Service) RenewAll(ctx context.Context) (domain.RenewAllResult, error) {
	creds, err := s.credentials()
	if err != nil {
		return domain.RenewAllResult{}, err
	}

	env := bus.NewEnvelope(ports.ChannelRenewAll, creds)
	result, err := bus.Call[domain.RenewAllResult](ctx, s.bus, ports.ChannelRenewAll, env)
	if err != nil {
		return domain.RenewAllResult{}, fmt.Errorf("renew all: %w", err)
	}
	return result, nil
}

// Block blocks a patron card directly, outside the login policy.
func (s *Service) Block(ctx context.Context, req domain.BlockRequest) (domain.PatronStatus, error) {
	if req.Reason == "" {
		req.Reason = s.blockReason
	}

	env := bus.NewEnvelope(ports.ChannelBlock, req)
	status, err := bus.Call[domain.PatronStatus](ctx, s.bus, ports.ChannelBlock, env)
	if err != nil {
		return domain.PatronStatus{}, fmt.Errorf("block: %w", err)
	}
	return status, nil
}
