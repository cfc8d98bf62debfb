package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "linkshortener"

// Counters exposes link outcomes on /metrics. It satisfies service.BusinessRecorder.
type Counters struct {
	registry      *prometheus.Registry
	created       *prometheus.CounterVec
	resolved      *prometheus.CounterVec
	droppedClicks prometheus.Counter
}

func NewCounters() *Counters {
	c := &Counters{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_created_total",
			Help:      "Link creation attempts by outcome.",
		}, []string{"outcome"}),
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_resolutions_total",
			Help:      "Short code resolutions by outcome.",
		}, []string{"outcome"}),
		droppedClicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_dropped_total",
			Help:      "Click events discarded because the queue was full.",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.created,
		c.resolved,
		c.droppedClicks,
	)
	return c
}

func (c *Counters) RecordCreate(outcome string) {
	c.created.WithLabelValues(outcome).Inc()
}

func (c *Counters) RecordResolve(outcome string) {
	c.resolved.WithLabelValues(outcome).Inc()
}

func (c *Counters) ClickDropped() {
	c.droppedClicks.Inc()
}

// WatchClickQueue publishes the current click backlog as a gauge.
func (c *Counters) WatchClickQueue(pending func() int) {
	c.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "click_queue_length",
		Help:      "Click events waiting to be written.",
	}, func() float64 { return float64(pending()) }))
}

func (c *Counters) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
