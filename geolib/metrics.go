package geolib

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics is a Metrics implementation which registers its
// collectors on a given registerer.
type PrometheusMetrics struct {
	lookups   *prometheus.CounterVec
	cacheOps  *prometheus.CounterVec
	discarded prometheus.Counter
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geofilter_lookups_total",
			Help: "Total resolutions by mode and outcome",
		}, []string{"mode", "outcome"}),
		cacheOps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geofilter_cache_operations_total",
			Help: "Lookup cache hits and misses",
		}, []string{"result"}),
		discarded: factory.NewCounter(prometheus.CounterOpts{
			Name: "geofilter_discarded_candidates_total",
			Help: "Total address candidates which could not be parsed",
		}),
	}
}

func (p *PrometheusMetrics) LookupOK(mode LookupMode) {
	p.lookups.WithLabelValues(mode.String(), "ok").Inc()
}

func (p *PrometheusMetrics) LookupFailed(mode LookupMode) {
	p.lookups.WithLabelValues(mode.String(), "failed").Inc()
}

func (p *PrometheusMetrics) CacheHit() {
	p.cacheOps.WithLabelValues("hit").Inc()
}

func (p *PrometheusMetrics) CacheMiss() {
	p.cacheOps.WithLabelValues("miss").Inc()
}

func (p *PrometheusMetrics) CandidateDiscarded() {
	p.discarded.Inc()
}
