package prometheus

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/khmm12/open-watcher/internal/domain"
)

type WatchStatePublisher struct {
	logger   *slog.Logger
	exporter *Exporter
}

func NewWatchStatePublisher(logger *slog.Logger, exporter *Exporter) *WatchStatePublisher {
	return &WatchStatePublisher{
		logger:   logger,
		exporter: exporter,
	}
}

func (p *WatchStatePublisher) PublishTargets(ctx context.Context, targets []domain.Target) error {
	p.logger.DebugContext(ctx, "Publishing watch list", slog.Int("targets", len(targets)))

	m := p.exporter.metrics

	m.targetsTotal.Set(float64(len(targets)))
	m.targetsNotified.Set(0)

	for _, target := range targets {
		m.targetState.WithLabelValues(target.Name).Set(float64(domain.TargetPending))
	}

	return nil
}

func (p *WatchStatePublisher) PublishState(_ context.Context, name string, state domain.TargetState) error {
	m := p.exporter.metrics

	m.targetState.WithLabelValues(name).Set(float64(state))

	// A repeated name counts once per watch list entry.
	if state == domain.TargetNotified {
		m.targetsNotified.Inc()
	}

	return nil
}

func (p *WatchStatePublisher) PublishAttempt(_ context.Context, name string, up bool) error {
	result := "down"
	if up {
		result = "up"
	}

	p.exporter.metrics.probeAttempts.WithLabelValues(name, result).Inc()

	return nil
}

func (p *WatchStatePublisher) PublishOpened(_ context.Context, name string, waited time.Duration) error {
	p.exporter.metrics.probeWait.WithLabelValues(name).Set(waited.Seconds())

	return nil
}

func (p *WatchStatePublisher) PublishNotifyFailure(_ context.Context, name string) error {
	p.exporter.metrics.notificationsFailed.WithLabelValues(name).Inc()

	return nil
}

func readGauge(g prometheus.Gauge) float64 {
	var out dto.Metric
	if err := g.Write(&out); err != nil {
		return 0
	}

	return out.GetGauge().GetValue()
}
