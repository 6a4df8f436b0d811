package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var namespace = "alpaca"
var subsystem = "marketcal"

var (
	// StartupTime stores how long the startup took (in seconds)
	StartupTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "startup_seconds",
			Help:      "Seconds taken by the startup",
		},
	)

	// RPCTotalRequestDuration stores the processing time for every request
	RPCTotalRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rpc_total_request_duration_seconds",
		Help:      "RPC request processing time for every request",
	})

	// RPCTotalRequestsTotal stores the number of requests
	RPCTotalRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rpc_total_requests_total",
		Help:      "Number of RPC requests received including ones resulting in errors",
	})

	// RPCSuccessfulRequestDuration stores the processing time for successful
	// requests partitioned by method
	RPCSuccessfulRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rpc_successful_request_duration_seconds",
		Help:      "RPC request processing time for successful requests partitioned by method",
	}, []string{"method"})

	// RPCSuccessfulRequestsTotal stores the number of successful
	// requests partitioned by method
	RPCSuccessfulRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rpc_successful_requests_total",
		Help:      "Number of RPC successful requests partitioned by method",
	}, []string{"method"})

	// EasterCacheLookupsTotal counts Easter cache lookups partitioned by
	// computus (western, orthodox) and result (hit, miss)
	EasterCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "easter_cache_lookups_total",
		Help:      "Number of Easter cache lookups partitioned by computus and result",
	}, []string{"computus", "result"})

	// WorkingDayScanDays stores how many calendar days a working-day
	// traversal moved, partitioned by jurisdiction
	WorkingDayScanDays = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "working_day_scan_days",
		Help:      "Calendar days covered by a working-day traversal",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89},
	}, []string{"country"})
)

// EasterCacheObserver returns a hook for calendar.EasterCache.Observe that
// records hits and misses under the given computus label.
func EasterCacheObserver(computus string) func(hit bool) {
	hits := EasterCacheLookupsTotal.WithLabelValues(computus, "hit")
	misses := EasterCacheLookupsTotal.WithLabelValues(computus, "miss")
	return func(hit bool) {
		if hit {
			hits.Inc()
		} else {
			misses.Inc()
		}
	}
}
