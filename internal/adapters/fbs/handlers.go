package fbs

import (
	"context"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
)

// Register serves the fbs.* channels backed by c. fbs.login is served by the
// application service; c.Login answers fbs.authenticate. The returned func
// unregisters them.
func Register(b *bus.Bus, c ports.Circulation) func() {
	offs := []func(){
		b.Handle(ports.ChannelStatus, func(ctx context.Context, _ bus.Envelope) (any, error) {
			return c.Status(ctx)
		}),
		b.Handle(ports.ChannelAuthenticate, withPayload(c.Login)),
		b.Handle(ports.ChannelPatronStatus, withPayload(c.PatronStatus)),
		b.Handle(ports.ChannelPatron, withPayload(c.Patron)),
		b.Handle(ports.ChannelCheckout, withPayload(c.Checkout)),
		b.Handle(ports.ChannelCheckin, withPayload(func(ctx context.Context, req domain.ItemRequest) (domain.CirculationResult, error) {
			return c.Checkin(ctx, req.ItemIdentifier)
		})),
		b.Handle(ports.ChannelRenew, withPayload(c.Renew)),
		b.Handle(ports.ChannelRenewAll, withPayload(c.RenewAll)),
		b.Handle(ports.ChannelBlock, withPayload(c.Block)),
	}

	return func() {
		for _, off := range offs {
			off()
		}
	}
}

func withPayload[P, R any](fn func(context.Context, P) (R, error)) bus.HandlerFunc {
	return func(ctx context.Context, env bus.Envelope) (any, error) {
		payload, err := bus.PayloadAs[P](env)
		if err != nil {
			return nil, err
		}
		return fn(ctx, payload)
	}
}
