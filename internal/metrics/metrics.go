// Package metrics exposes Prometheus instrumentation for simulation runs and
// candidate searches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// walksTotal counts finished walks by outcome (exited, looped).
	walksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patrolgrid_walks_total",
		Help: "Total finished walks by outcome",
	}, []string{"outcome"})

	// walkTransitions tracks the number of transitions per walk.
	walkTransitions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patrolgrid_walk_transitions",
		Help:    "Transitions (moves and turns) per walk",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	// candidatesTotal counts evaluated obstruction candidates by result.
	candidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patrolgrid_candidates_total",
		Help: "Total obstruction candidates by result",
	}, []string{"result"})

	// searchDuration tracks wall time of a full candidate search.
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patrolgrid_search_duration_seconds",
		Help:    "Candidate search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
	})
)

// ObserveWalk records a finished walk.
func ObserveWalk(outcome string, transitions int) {
	walksTotal.WithLabelValues(outcome).Inc()
	walkTransitions.Observe(float64(transitions))
}

// ObserveCandidate records the result of one candidate evaluation: "loop",
// "exit" or "skipped".
func ObserveCandidate(result string) {
	candidatesTotal.WithLabelValues(result).Inc()
}

// ObserveSearch records the duration of a candidate search.
func ObserveSearch(d time.Duration) {
	searchDuration.Observe(d.Seconds())
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
