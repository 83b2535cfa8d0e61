package osmtrip

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "osmtrip"

// Metrics collects planner statistics
type Metrics struct {
	// GraphBuildSeconds measures routing graph construction. Labels: mode
	GraphBuildSeconds *prometheus.HistogramVec

	// SearchSeconds measures path queries. Labels: mode
	SearchSeconds *prometheus.HistogramVec

	// NoPathTotal counts queries without result. Labels: mode
	NoPathTotal *prometheus.CounterVec

	// GraphCacheHitsTotal counts graphs taken from cache instead of being built
	GraphCacheHitsTotal prometheus.Counter
}

// NewMetrics creates planner metrics and registers them in given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GraphBuildSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "graph_build_seconds",
			Help:      "Time spent building routing graph",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"mode"}),
		SearchSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "search_seconds",
			Help:      "Time spent on shortest path search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"mode"}),
		NoPathTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "no_path_total",
			Help:      "Number of queries where destination is unreachable",
		}, []string{"mode"}),
		GraphCacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "graph_cache_hits_total",
			Help:      "Number of routing graphs reused from cache",
		}),
	}
}

func (m *Metrics) observeBuild(mode GraphMode, st time.Time) {
	if m == nil {
		return
	}
	m.GraphBuildSeconds.WithLabelValues(mode.String()).Observe(time.Since(st).Seconds())
}

func (m *Metrics) observeSearch(mode GraphMode, st time.Time, found bool) {
	if m == nil {
		return
	}
	m.SearchSeconds.WithLabelValues(mode.String()).Observe(time.Since(st).Seconds())
	if !found {
		m.NoPathTotal.WithLabelValues(mode.String()).Inc()
	}
}

func (m *Metrics) cacheHit() {
	if m == nil {
		return
	}
	m.GraphCacheHitsTotal.Inc()
}
