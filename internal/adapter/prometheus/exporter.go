package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Exporter struct {
	reg     *prometheus.Registry
	metrics *metrics
}

func NewExporter() (*Exporter, error) {
	reg := prometheus.NewRegistry()

	metrics, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	err = register(reg,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		reg:     reg,
		metrics: metrics,
	}, nil
}

func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.reg, promhttp.HandlerOpts{})
}

// Progress reports how many watch list entries were notified so far.
func (e *Exporter) Progress() (notified, total int) {
	return int(readGauge(e.metrics.targetsNotified)), int(readGauge(e.metrics.targetsTotal))
}
