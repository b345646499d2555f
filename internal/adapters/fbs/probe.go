package fbs

import (
	"context"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
)

const onlineTag = "fbs.sip2.online"

// BusProbe asks the reachability provider on the bus whether the FBS
// endpoint is up.
type BusProbe struct {
	Bus *bus.Bus
}

var _ ports.ReachabilityProbe = BusProbe{}

func (p BusProbe) Online(ctx context.Context, url string) (bool, error) {
	env := bus.NewEnvelope(onlineTag, domain.OnlineRequest{URL: url})
	return bus.Call[bool](ctx, p.Bus, ports.ChannelOnline, env)
}

// LoadSessionConfig fetches the FBS session config from the config provider.
func LoadSessionConfig(ctx context.Context, b *bus.Bus) (domain.SessionConfig, error) {
	env := bus.NewEnvelope(ports.ChannelConfigFBS+".res", nil)
	return bus.Call[domain.SessionConfig](ctx, b, ports.ChannelConfigFBS, env)
}
