package mdns

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"golang.org/x/net/dns/dnsmessage"
	"golang.org/x/sync/semaphore"
)

var ErrLookupTimeout = errors.New("mdns lookup timed out")

type querier interface {
	QueryAddr(ctx context.Context, name string) (dnsmessage.ResourceHeader, netip.Addr, error)
}

// Resolver looks up .local host names. It is queried once per host before probing starts.
type Resolver struct {
	logger  *slog.Logger
	conn    querier
	sem     *semaphore.Weighted
	timeout time.Duration
}

func NewResolver(client *Client, timeout time.Duration) *Resolver {
	return &Resolver{
		logger:  client.logger,
		conn:    client.conn,
		sem:     client.sem,
		timeout: timeout,
	}
}

func (r *Resolver) Resolve(ctx context.Context, host string) (netip.Addr, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return netip.Addr{}, err
	}

	defer r.sem.Release(1)

	innerCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, addr, err := r.conn.QueryAddr(innerCtx, host)
	if err != nil {
		// The parent context ending is not a lookup failure.
		if ctx.Err() != nil {
			return netip.Addr{}, ctx.Err()
		}

		if errors.Is(err, context.DeadlineExceeded) || errors.Is(innerCtx.Err(), context.DeadlineExceeded) {
			return netip.Addr{}, fmt.Errorf("%w: %s", ErrLookupTimeout, host)
		}

		return netip.Addr{}, fmt.Errorf("failed to query %s: %w", host, err)
	}

	r.logger.DebugContext(ctx, "Resolved mdns host", slog.String("host", host), slog.String("addr", addr.String()))

	return addr.Unmap(), nil
}
