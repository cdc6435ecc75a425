package solver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Solver reports into.
// A nil *Metrics records nothing.
type Metrics struct {
	searches       *prometheus.CounterVec
	searchDuration prometheus.Histogram
	laddersFound   prometheus.Histogram
	indexBuilds    prometheus.Counter
	buildDuration  prometheus.Histogram
}

// NewMetrics creates the solver collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordladder_searches_total",
			Help: "Ladder searches by outcome (found, exhausted, done, error).",
		}, []string{"outcome"}),
		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordladder_search_duration_seconds",
			Help:    "Wall time of one ladder search. Single searches include loading their index; batch searches reuse indexes built up front.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		laddersFound: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordladder_ladders_found",
			Help:    "Number of shortest ladders returned per search.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 100},
		}),
		indexBuilds: f.NewCounter(prometheus.CounterOpts{
			Name: "wordladder_index_builds_total",
			Help: "Adjacency indexes built.",
		}),
		buildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordladder_index_build_duration_seconds",
			Help:    "Time to load a dictionary and build its index.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

func (m *Metrics) observeSearch(outcome string, elapsed time.Duration, ladders int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
	m.searchDuration.Observe(elapsed.Seconds())
	if outcome != "error" {
		m.laddersFound.Observe(float64(ladders))
	}
}

func (m *Metrics) observeBuild(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.indexBuilds.Inc()
	m.buildDuration.Observe(elapsed.Seconds())
}
