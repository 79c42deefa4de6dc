package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes
const (
	OutcomeSummarized         = "summarized"
	OutcomeNoInformation      = "no_information"
	OutcomeParseFallback      = "parse_fallback"
	OutcomeSearchUnavailable  = "search_unavailable"
	OutcomeSummaryUnavailable = "summary_unavailable"
)

// Upstream collaborators
const (
	UpstreamSearch  = "search"
	UpstreamSummary = "summary"
)

var (
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callerguard_lookups_total",
			Help: "Total number of phone lookups by outcome",
		},
		[]string{"outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "callerguard_upstream_duration_seconds",
			Help:    "Duration of calls to search and summary providers in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"upstream", "status"},
	)

	FilteredResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "callerguard_filtered_results",
			Help:    "Number of search results kept after snippet filtering",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		},
	)
)

// ObserveUpstream records the duration of one upstream call
func ObserveUpstream(upstream string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	UpstreamDuration.WithLabelValues(upstream, status).Observe(time.Since(start).Seconds())
}
