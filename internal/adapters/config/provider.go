package config

import (
	"context"
	"fmt"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
)

const (
	storageKind = "config"
	storageName = "fbs"
)

// Provider answers config.fbs requests. The [fbs] section of the config file
// wins; without one the provider falls back to the config/fbs.json document
// of the storage.
type Provider struct {
	session domain.SessionConfig
	storage ports.FileStorage
}

func NewProvider(cfg Config, storage ports.FileStorage) *Provider {
	return &Provider{session: cfg.FBS, storage: storage}
}

func (p *Provider) SessionConfig(ctx context.Context) (domain.SessionConfig, error) {
	if p.session.Complete() {
		return p.session, nil
	}
	if p.storage == nil {
		return domain.SessionConfig{}, domain.ErrConfigNotFound
	}

	var stored domain.SessionConfig
	if err := p.storage.Load(ctx, storageKind, storageName, &stored); err != nil {
		return domain.SessionConfig{}, fmt.Errorf("%w: %v", domain.ErrConfigNotFound, err)
	}
	if !stored.Complete() {
		return domain.SessionConfig{}, fmt.Errorf("%w: %s/%s lacks endpoint or agency", domain.ErrConfigNotFound, storageKind, storageName)
	}
	return stored, nil
}

// Register serves config.fbs on b.
func (p *Provider) Register(b *bus.Bus) func() {
	return b.Handle(ports.ChannelConfigFBS, func(ctx context.Context, _ bus.Envelope) (any, error) {
		return p.SessionConfig(ctx)
	})
}
