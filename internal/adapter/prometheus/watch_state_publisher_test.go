package prometheus

import (
	"context"
	"io"
	"log/slog"
	"net/netip"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/khmm12/open-watcher/internal/domain"
)

func TestWatchStatePublisher_PublishTargetsResetsProgress(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.PublishTargets(ctx, []domain.Target{newTarget("A"), newTarget("B")})
	require.NoError(t, err)

	requireMetric(t, 2.0, exporter.metrics.targetsTotal)
	requireMetric(t, 0.0, exporter.metrics.targetsNotified)
	requireMetric(t, float64(domain.TargetPending), exporter.metrics.targetState.WithLabelValues("A"))
	requireMetric(t, float64(domain.TargetPending), exporter.metrics.targetState.WithLabelValues("B"))

	notified, total := exporter.Progress()
	require.Equal(t, 0, notified)
	require.Equal(t, 2, total)
}

func TestWatchStatePublisher_PublishStateTracksNotified(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	require.NoError(t, publisher.PublishTargets(ctx, []domain.Target{newTarget("A"), newTarget("A")}))

	require.NoError(t, publisher.PublishState(ctx, "A", domain.TargetProbing))
	requireMetric(t, float64(domain.TargetProbing), exporter.metrics.targetState.WithLabelValues("A"))

	require.NoError(t, publisher.PublishState(ctx, "A", domain.TargetNotified))
	require.NoError(t, publisher.PublishState(ctx, "A", domain.TargetProbing))
	require.NoError(t, publisher.PublishState(ctx, "A", domain.TargetNotified))

	requireMetric(t, float64(domain.TargetNotified), exporter.metrics.targetState.WithLabelValues("A"))

	notified, total := exporter.Progress()
	require.Equal(t, 2, notified)
	require.Equal(t, 2, total)
}

func TestWatchStatePublisher_PublishAttemptCountsResults(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	require.NoError(t, publisher.PublishAttempt(ctx, "A", false))
	require.NoError(t, publisher.PublishAttempt(ctx, "A", false))
	require.NoError(t, publisher.PublishAttempt(ctx, "A", true))

	requireMetric(t, 2.0, exporter.metrics.probeAttempts.WithLabelValues("A", "down"))
	requireMetric(t, 1.0, exporter.metrics.probeAttempts.WithLabelValues("A", "up"))
}

func TestWatchStatePublisher_PublishOpenedAndFailures(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	require.NoError(t, publisher.PublishOpened(ctx, "A", 1500*time.Millisecond))
	require.NoError(t, publisher.PublishNotifyFailure(ctx, "A"))

	requireMetric(t, 1.5, exporter.metrics.probeWait.WithLabelValues("A"))
	requireMetric(t, 1.0, exporter.metrics.notificationsFailed.WithLabelValues("A"))
}

func newTestPublisher(t *testing.T) (*Exporter, *WatchStatePublisher) {
	t.Helper()

	exporter, err := NewExporter()
	require.NoError(t, err)

	publisher := NewWatchStatePublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), exporter)

	return exporter, publisher
}

func newTarget(name string) domain.Target {
	return domain.Target{
		Name:     name,
		Address:  "1.2.3.4",
		AddrPort: netip.MustParseAddrPort("1.2.3.4:100"),
	}
}

func requireMetric(t *testing.T, expected float64, metric prometheus.Collector) {
	t.Helper()

	require.InDelta(t, expected, testutil.ToFloat64(metric), 0.001)
}
