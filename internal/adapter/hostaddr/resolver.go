package hostaddr

import (
	"context"
	"errors"
	"net/netip"
	"strings"

	"github.com/khmm12/open-watcher/internal/ports"
)

var (
	ErrNotIPv4       = errors.New("not an IPv4 address")
	ErrNotResolvable = errors.New("not an IPv4 address and no resolver is configured for it")
)

// Resolver accepts IPv4 literals and hands .local names to an optional mDNS resolver.
type Resolver struct {
	local ports.HostResolver
}

func NewResolver(local ports.HostResolver) *Resolver {
	return &Resolver{local: local}
}

func (r *Resolver) Resolve(ctx context.Context, host string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		addr = addr.Unmap()
		if !addr.Is4() {
			return netip.Addr{}, ErrNotIPv4
		}

		return addr, nil
	}

	if r.local != nil && isLocalName(host) {
		return r.local.Resolve(ctx, host)
	}

	return netip.Addr{}, ErrNotResolvable
}

func isLocalName(host string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSuffix(host, ".")), ".local")
}
