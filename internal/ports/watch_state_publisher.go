package ports

import (
	"context"
	"time"

	"github.com/khmm12/open-watcher/internal/domain"
)

type WatchStatePublisher interface {
	PublishTargets(ctx context.Context, targets []domain.Target) error
	PublishState(ctx context.Context, name string, state domain.TargetState) error
	PublishAttempt(ctx context.Context, name string, up bool) error
	PublishOpened(ctx context.Context, name string, waited time.Duration) error
	PublishNotifyFailure(ctx context.Context, name string) error
}
