package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/khmm12/open-watcher/internal/common/tracing"
)

var ErrAlreadyRunning = errors.New("worker is already running")

type Task interface {
	Execute(ctx context.Context) error
}

// Worker runs a single watch session to completion. Shutdown interrupts it.
type Worker struct {
	logger *slog.Logger
	task   Task

	running sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWorker(logger *slog.Logger, task Task) *Worker {
	return &Worker{
		logger: logger,
		task:   task,
	}
}

// Start blocks until the task returns or the worker is shut down.
func (w *Worker) Start(ctx context.Context) error {
	if !w.running.TryLock() {
		return ErrAlreadyRunning
	}

	defer w.running.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	defer close(done)

	w.mu.Lock()
	w.cancel, w.done = cancel, done
	w.mu.Unlock()

	ctx = tracing.WithTraceID(ctx)
	started := time.Now()

	w.logger.DebugContext(ctx, "Session started")

	err := w.task.Execute(ctx)

	w.logger.DebugContext(ctx, "Session finished", slog.Duration("duration", time.Since(started)))

	return err
}

// Shutdown cancels the running session and waits for it to return or for ctx to end.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
