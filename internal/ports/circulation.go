package ports

import (
	"context"

	"github.com/bnema/bibbox-fbs/internal/domain"
)

// Circulation is the FBS protocol client as seen by the bus handlers.
type Circulation interface {
	Status(ctx context.Context) (domain.LibraryStatus, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
	PatronStatus(ctx context.Context, creds domain.Credentials) (domain.PatronStatus, error)
	Patron(ctx context.Context, creds domain.Credentials) (domain.Patron, error)
	Checkout(ctx context.Context, req domain.ItemRequest) (domain.CirculationResult, error)
	Checkin(ctx context.Context, itemIdentifier string) (domain.CirculationResult, error)
	Renew(ctx context.Context, req domain.ItemRequest) (domain.CirculationResult, error)
	RenewAll(ctx context.Context, creds domain.Credentials) (domain.RenewAllResult, error)
	Block(ctx context.Context, req domain.BlockRequest) (domain.PatronStatus, error)
}

// ReachabilityProbe answers whether url can be reached right now.
type ReachabilityProbe interface {
	Online(ctx context.Context, url string) (bool, error)
}
