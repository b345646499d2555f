package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	configadapter "github.com/bnema/bibbox-fbs/internal/adapters/config"
	fbsadapter "github.com/bnema/bibbox-fbs/internal/adapters/fbs"
	networkadapter "github.com/bnema/bibbox-fbs/internal/adapters/network"
	storageadapter "github.com/bnema/bibbox-fbs/internal/adapters/storage"
	"github.com/bnema/bibbox-fbs/internal/application"
	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/metrics"
	"github.com/bnema/bibbox-fbs/internal/ports"
	"github.com/bnema/bibbox-fbs/internal/tracker"
	"github.com/spf13/viper"
)

type app struct {
	cfg      configadapter.Config
	logger   *slog.Logger
	bus      *bus.Bus
	metrics  *metrics.Metrics
	service  *application.Service
	store    *storageadapter.Store
	attempts *tracker.Tracker
	now      func() time.Time
}

// Failed login counts survive between runs in <storage>/tracker/attempts.json.
const (
	attemptsKind = "tracker"
	attemptsName = "attempts"
)

// wireApp loads the config and connects the providers and the FBS client on
// a fresh bus. Close releases the bus and stores the failed login counts.
func wireApp(ctx context.Context, configPath string, logOutput io.Writer) (*app, error) {
	cfg, err := configadapter.Load(viper.New(), configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := configadapter.NewLogger(logOutput, cfg.LogLevel)
	m := metrics.New()
	b := bus.New(
		bus.WithRequestTimeout(cfg.Bus.RequestTimeout),
		bus.WithLogger(logger),
		bus.WithObserver(m),
	)

	store := storageadapter.NewStore(cfg.StoragePath)
	store.Register(b)
	configadapter.NewProvider(cfg, store).Register(b)

	checker := networkadapter.NewChecker(cfg.Network.ProbeTimeout, cfg.Network.CacheTTL)
	checker.Logger = logger
	checker.Register(b)

	session, err := fbsadapter.LoadSessionConfig(ctx, b)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("load fbs config: %w", err)
	}

	client, err := fbsadapter.NewClient(session, fbsadapter.BusProbe{Bus: b}, ports.SystemClock{})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("wire fbs client: %w", err)
	}
	client.RequestTimeout = cfg.FBSRequestTimeout
	client.Logger = logger
	client.Observer = m
	fbsadapter.Register(b, client)

	attempts := tracker.New(cfg.Login.MaxAttempts)
	var counts map[string]int
	if err := store.Load(ctx, attemptsKind, attemptsName, &counts); err != nil && !errors.Is(err, storageadapter.ErrNotFound) {
		logger.Warn("load failed login counts", slog.Any("error", err))
	}
	attempts.Restore(counts)

	service := application.NewService(
		b,
		attempts,
		cfg.Login.BlockReason,
		application.WithRecorder(m),
		application.WithLogger(logger),
	)
	service.Register()

	return &app{
		cfg:      cfg,
		logger:   logger,
		bus:      b,
		metrics:  m,
		service:  service,
		store:    store,
		attempts: attempts,
		now:      time.Now,
	}, nil
}

func (a *app) Close() {
	a.bus.Close()

	if err := a.store.Save(context.Background(), attemptsKind, attemptsName, a.attempts.Snapshot()); err != nil {
		a.logger.Warn("save failed login counts", slog.Any("error", err))
	}
}
