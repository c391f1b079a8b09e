package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/khmm12/open-watcher/internal/common/logging"
	"github.com/khmm12/open-watcher/internal/common/tracing"
	"github.com/khmm12/open-watcher/internal/domain"
	"github.com/khmm12/open-watcher/internal/ports"
)

type WatchEndpointsUseCase struct {
	logger    *slog.Logger
	source    ports.DirectorySource
	resolve   *ResolveEndpointsUseCase
	probe     *ProbeEndpointUseCase
	notifier  ports.Notifier
	publisher ports.WatchStatePublisher
}

func NewWatchEndpointsUseCase(
	logger *slog.Logger,
	source ports.DirectorySource,
	resolve *ResolveEndpointsUseCase,
	probe *ProbeEndpointUseCase,
	notifier ports.Notifier,
	publisher ports.WatchStatePublisher,
) *WatchEndpointsUseCase {
	return &WatchEndpointsUseCase{
		logger:    logger,
		source:    source,
		resolve:   resolve,
		probe:     probe,
		notifier:  notifier,
		publisher: publisher,
	}
}

type WatchEndpointsCommand struct {
	Servers  []string
	Interval time.Duration
	Deadline time.Duration
}

// Execute fetches the directory, resolves the whole watch list and then watches it.
func (u *WatchEndpointsUseCase) Execute(ctx context.Context, cmd WatchEndpointsCommand) error {
	dir, err := u.source.Fetch(ctx)
	if err != nil {
		return err
	}

	u.logger.InfoContext(ctx, "Fetched directory",
		slog.Int("count", len(dir)),
		slog.Any("servers", dir.Names()),
	)

	targets, err := u.resolve.Execute(ctx, dir, cmd.Servers)
	if err != nil {
		return err
	}

	return u.Run(ctx, targets, cmd.Interval, cmd.Deadline)
}

// Run probes targets strictly in order. The notifier is called once per opened target
// before the next target is probed.
func (u *WatchEndpointsUseCase) Run(ctx context.Context, targets []domain.Target, interval, deadline time.Duration) error {
	if err := u.publisher.PublishTargets(ctx, targets); err != nil {
		u.logger.WarnContext(ctx, "Failed to publish targets", logging.Error(err))
	}

	for i, target := range targets {
		tctx := tracing.WithTarget(ctx, target.Name)

		u.publishState(tctx, target.Name, domain.TargetProbing)

		u.logger.InfoContext(tctx, "Watching endpoint",
			slog.String("addr", target.AddrPort.String()),
			slog.Int("position", i+1),
			slog.Int("total", len(targets)),
		)

		res, err := u.probe.Execute(tctx, ProbeEndpointCommand{
			Target:   target,
			Interval: interval,
			Deadline: deadline,
		})
		if err != nil {
			if errors.Is(err, domain.ErrProbeDeadline) {
				u.logger.WarnContext(tctx, "Gave up on endpoint", slog.Int("attempts", res.Attempts), slog.Duration("waited", res.Elapsed))
				u.publishState(tctx, target.Name, domain.TargetAbandoned)

				continue
			}

			return fmt.Errorf("failed to watch %s: %w", target.Name, err)
		}

		u.logger.InfoContext(tctx, "Endpoint is open", slog.Int("attempts", res.Attempts), slog.Duration("waited", res.Elapsed))

		if err := u.publisher.PublishOpened(tctx, target.Name, res.Elapsed); err != nil {
			u.logger.WarnContext(tctx, "Failed to publish opened endpoint", logging.Error(err))
		}

		u.notify(tctx, target.Name)
		u.publishState(tctx, target.Name, domain.TargetNotified)
	}

	u.logger.InfoContext(ctx, "Watch list exhausted", slog.Int("total", len(targets)))

	return nil
}

func (u *WatchEndpointsUseCase) notify(ctx context.Context, name string) {
	err := u.notifier.Notify(ctx, name)
	if err == nil {
		return
	}

	u.logger.ErrorContext(ctx, "Failed to notify", logging.Error(err))

	if err := u.publisher.PublishNotifyFailure(ctx, name); err != nil {
		u.logger.WarnContext(ctx, "Failed to publish notification failure", logging.Error(err))
	}
}

func (u *WatchEndpointsUseCase) publishState(ctx context.Context, name string, state domain.TargetState) {
	if err := u.publisher.PublishState(ctx, name, state); err != nil {
		u.logger.WarnContext(ctx, "Failed to publish target state", slog.String("state", state.String()), logging.Error(err))
	}
}
