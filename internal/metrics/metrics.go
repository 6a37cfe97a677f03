// Package metrics provides Prometheus metrics for the sync pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "podsync"

var (
	// ItemsProcessed counts feed items by outcome (created, updated, failed, skipped).
	ItemsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_processed_total",
			Help:      "Total number of feed items processed",
		},
		[]string{"outcome"},
	)

	// PodcastSyncs counts per-podcast syncs by result.
	PodcastSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "podcast_syncs_total",
			Help:      "Total number of podcast syncs",
		},
		[]string{"result"},
	)

	// SyncDuration measures how long one podcast sync takes.
	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "podcast_sync_duration_seconds",
			Help:      "Duration of a single podcast sync in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// MediaProbes counts media URL probes by result.
	MediaProbes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_probes_total",
			Help:      "Total number of secure media URL probes",
		},
		[]string{"result"},
	)

	// SweepsRunning is 1 while a full sweep is in progress.
	SweepsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_running",
			Help:      "Whether a sweep over all podcasts is running (1 = running)",
		},
	)

	// SweepDuration measures full sweeps.
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Duration of a sweep over all podcasts in seconds",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

// RecordItem records the outcome of one feed item.
func RecordItem(outcome string) {
	ItemsProcessed.WithLabelValues(outcome).Inc()
}

// RecordPodcastSync records one podcast sync.
func RecordPodcastSync(result string, seconds float64) {
	PodcastSyncs.WithLabelValues(result).Inc()
	SyncDuration.Observe(seconds)
}

// RecordProbe records a media probe result.
func RecordProbe(result string) {
	MediaProbes.WithLabelValues(result).Inc()
}

// SweepStarted marks a sweep as running.
func SweepStarted() {
	SweepsRunning.Set(1)
}

// SweepFinished marks the sweep as done and records its duration.
func SweepFinished(seconds float64) {
	SweepsRunning.Set(0)
	SweepDuration.Observe(seconds)
}
