package usecase

import (
	"context"
	"log/slog"
	"net/netip"

	"github.com/khmm12/open-watcher/internal/domain"
	"github.com/khmm12/open-watcher/internal/ports"
)

type ResolveEndpointsUseCase struct {
	logger   *slog.Logger
	resolver ports.HostResolver
}

func NewResolveEndpointsUseCase(logger *slog.Logger, resolver ports.HostResolver) *ResolveEndpointsUseCase {
	return &ResolveEndpointsUseCase{
		logger:   logger,
		resolver: resolver,
	}
}

// Execute maps the watch list onto the directory. Every name is checked before any address
// is resolved, so a typo is reported before anything touches the network.
func (u *ResolveEndpointsUseCase) Execute(ctx context.Context, dir domain.Directory, names []string) ([]domain.Target, error) {
	entries := make([]domain.DirectoryEntry, 0, len(names))

	for _, name := range names {
		entry, ok := dir.Lookup(name)
		if !ok {
			return nil, &domain.UnknownEndpointError{Name: name}
		}

		entries = append(entries, entry)
	}

	resolved := make(map[string]netip.Addr, len(entries))
	targets := make([]domain.Target, 0, len(entries))

	for _, entry := range entries {
		addr, ok := resolved[entry.Address]
		if !ok {
			var err error

			addr, err = u.resolver.Resolve(ctx, entry.Address)
			if err != nil {
				return nil, &domain.ConfigurationError{Name: entry.Name, Address: entry.Address, Err: err}
			}

			resolved[entry.Address] = addr
		}

		target := domain.Target{
			Name:     entry.Name,
			Address:  entry.Address,
			AddrPort: netip.AddrPortFrom(addr, entry.Port),
		}

		u.logger.DebugContext(ctx, "Resolved endpoint",
			slog.String("name", target.Name),
			slog.String("addr", target.AddrPort.String()),
		)

		targets = append(targets, target)
	}

	return targets, nil
}
