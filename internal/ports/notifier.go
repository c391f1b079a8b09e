package ports

import "context"

type Notifier interface {
	Notify(ctx context.Context, name string) error
}
