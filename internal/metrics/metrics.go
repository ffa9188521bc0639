// Package metrics provides Prometheus metrics for the feed service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsfeed"

var (
	// FeedFetchTotal counts feed fetches by source and outcome.
	FeedFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetch_total",
			Help:      "Total number of feed fetches",
		},
		[]string{"source", "status"},
	)

	// FeedFetchDuration measures feed fetch duration.
	FeedFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of feed fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// CardsAssembled observes how many cards one fetch produced.
	CardsAssembled = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cards_assembled",
			Help:      "Distribution of assembled card counts",
			Buckets:   []float64{2, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// EventsTotal counts analytics events by kind and outcome.
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_events_total",
			Help:      "Total number of analytics events",
		},
		[]string{"kind", "status"},
	)

	// ActiveSessions tracks cached tab sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of tab sessions held in memory",
		},
	)

	// SessionEvictionsTotal counts sessions dropped from the cache.
	SessionEvictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_evictions_total",
			Help:      "Total number of tab sessions removed from memory",
		},
		[]string{"reason"},
	)

	// UpdateAvailable is 1 when the remote feed differs from the last one served.
	UpdateAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_update_available",
			Help:      "Whether newer feed content is available (1 = yes)",
		},
	)
)

// RecordFetch records one feed fetch.
func RecordFetch(source, status string, duration float64) {
	FeedFetchTotal.WithLabelValues(source, status).Inc()
	FeedFetchDuration.WithLabelValues(source).Observe(duration)
}

// RecordEvent records the outcome of one analytics event.
func RecordEvent(kind, status string) {
	EventsTotal.WithLabelValues(kind, status).Inc()
}

// SetUpdateAvailable sets the update gauge.
func SetUpdateAvailable(available bool) {
	if available {
		UpdateAvailable.Set(1)
		return
	}
	UpdateAvailable.Set(0)
}
