package usecase

import (
	"context"
	"io"
	"log/slog"
	"net/netip"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/khmm12/open-watcher/internal/domain"
	portsm "github.com/khmm12/open-watcher/internal/ports/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newNopPublisher(t *testing.T) *portsm.MockWatchStatePublisher {
	t.Helper()

	publisher := portsm.NewMockWatchStatePublisher(t)
	publisher.On("PublishTargets", mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher.On("PublishState", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher.On("PublishAttempt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher.On("PublishOpened", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher.On("PublishNotifyFailure", mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

func newTarget(name, addr string) domain.Target {
	addrPort := netip.MustParseAddrPort(addr)

	return domain.Target{
		Name:     name,
		Address:  addrPort.Addr().String(),
		AddrPort: addrPort,
	}
}

// recorder keeps the order in which collaborators were called.
type recorder struct {
	mu     sync.Mutex
	events []string
	waits  []time.Duration
}

func (r *recorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

func (r *recorder) wait(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, "wait")
	r.waits = append(r.waits, d)

	return nil
}
