package usecase

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/khmm12/open-watcher/internal/common/logging"
	"github.com/khmm12/open-watcher/internal/domain"
	"github.com/khmm12/open-watcher/internal/ports"
)

type waitFunc func(ctx context.Context, d time.Duration) error

type ProbeEndpointUseCase struct {
	logger    *slog.Logger
	dialer    ports.EndpointDialer
	publisher ports.WatchStatePublisher
	wait      waitFunc
}

func NewProbeEndpointUseCase(logger *slog.Logger, dialer ports.EndpointDialer, publisher ports.WatchStatePublisher) *ProbeEndpointUseCase {
	return &ProbeEndpointUseCase{
		logger:    logger,
		dialer:    dialer,
		publisher: publisher,
		wait:      sleep,
	}
}

type ProbeEndpointCommand struct {
	Target   domain.Target
	Interval time.Duration
	// Deadline bounds the whole probe. Zero, the default, waits forever.
	Deadline time.Duration
}

type ProbeResult struct {
	Attempts int
	Elapsed  time.Duration
}

// Execute dials the target until a connection succeeds, waiting Interval after every failure.
// Failed attempts are expected and never surface as errors. It only fails when ctx ends or the
// deadline elapses, in which case domain.ErrProbeDeadline is returned.
func (u *ProbeEndpointUseCase) Execute(ctx context.Context, cmd ProbeEndpointCommand) (ProbeResult, error) {
	if cmd.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, cmd.Deadline, domain.ErrProbeDeadline)
		defer cancel()
	}

	started := time.Now()

	for attempt := 1; ; attempt++ {
		err := u.dialer.Dial(ctx, cmd.Target.AddrPort)
		u.publishAttempt(ctx, cmd.Target.Name, err == nil)

		if err == nil {
			return ProbeResult{Attempts: attempt, Elapsed: time.Since(started)}, nil
		}

		if ctx.Err() != nil {
			return ProbeResult{Attempts: attempt, Elapsed: time.Since(started)}, context.Cause(ctx)
		}

		u.logger.DebugContext(ctx, "Endpoint is not reachable yet",
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", cmd.Interval),
			logging.Error(err),
		)

		if err := u.wait(ctx, cmd.Interval); err != nil {
			return ProbeResult{Attempts: attempt, Elapsed: time.Since(started)}, context.Cause(ctx)
		}
	}
}

func (u *ProbeEndpointUseCase) publishAttempt(ctx context.Context, name string, up bool) {
	if err := u.publisher.PublishAttempt(ctx, name, up); err != nil {
		u.logger.WarnContext(ctx, "Failed to publish probe attempt", logging.Error(err))
	}
}

// sleep waits for d unless ctx ends first. A zero interval still yields to the scheduler.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		runtime.Gosched()
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
