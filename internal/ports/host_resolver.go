package ports

import (
	"context"
	"net/netip"
)

type HostResolver interface {
	Resolve(ctx context.Context, host string) (netip.Addr, error)
}
