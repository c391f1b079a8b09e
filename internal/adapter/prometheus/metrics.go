package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	targetsTotal        prometheus.Gauge
	targetsNotified     prometheus.Gauge
	targetState         *prometheus.GaugeVec
	probeAttempts       *prometheus.CounterVec
	probeWait           *prometheus.GaugeVec
	notificationsFailed *prometheus.CounterVec
}

const (
	prefix = "open_watcher_"
)

func newMetrics(reg *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		targetsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "targets_total",
			Help: "Number of entries in the watch list",
		}),
		targetsNotified: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "targets_notified",
			Help: "Number of watch list entries which opened and were notified",
		}),
		targetState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "target_state",
			Help: "State of a watched endpoint (0: pending, 1: probing, 2: notified, 3: abandoned)",
		}, []string{"target"}),
		probeAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "probe_attempts_total",
			Help: "Number of connection attempts per endpoint and result",
		}, []string{"target", "result"}),
		probeWait: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "probe_wait_seconds",
			Help: "Time between the start of probing and the endpoint opening",
		}, []string{"target"}),
		notificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "notifications_failed_total",
			Help: "Number of notifications which could not be delivered",
		}, []string{"target"}),
	}

	err := register(reg,
		m.targetsTotal,
		m.targetsNotified,
		m.targetState,
		m.probeAttempts,
		m.probeWait,
		m.notificationsFailed,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register(r *prometheus.Registry, cs ...prometheus.Collector) error {
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, c := range cs[:i] {
				r.Unregister(c)
			}

			return err
		}
	}

	return nil
}
