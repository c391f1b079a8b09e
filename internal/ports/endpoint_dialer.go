package ports

import (
	"context"
	"net/netip"
)

// EndpointDialer makes a single connection attempt and releases the connection before returning.
type EndpointDialer interface {
	Dial(ctx context.Context, addr netip.AddrPort) error
}
