package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/khmm12/open-watcher/internal/ports"
)

var _ ports.Notifier = (*Fanout)(nil)

// Fanout delivers a notification through every channel, even when some of them fail.
type Fanout struct {
	channels map[string]ports.Notifier
	order    []string
}

func NewFanout() *Fanout {
	return &Fanout{channels: make(map[string]ports.Notifier)}
}

func (f *Fanout) Add(name string, n ports.Notifier) *Fanout {
	if _, ok := f.channels[name]; !ok {
		f.order = append(f.order, name)
	}

	f.channels[name] = n

	return f
}

func (f *Fanout) Channels() []string {
	return f.order
}

func (f *Fanout) Notify(ctx context.Context, name string) error {
	var errs []error

	for _, channel := range f.order {
		if err := f.channels[channel].Notify(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", channel, err))
		}
	}

	return errors.Join(errs...)
}
