// Package metrics defines the Prometheus collectors emitted by the pipeline
// components and the /metrics exposition handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ScheduledFetches counts fetch tasks dispatched by the scheduler.
	ScheduledFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_scheduled_fetches_total",
		Help: "Fetch tasks dispatched per worker pool.",
	}, []string{"pool"})

	// FetchAttempts counts fetch outcomes by strategy and status class
	// (2xx/3xx/4xx/5xx/error/blocked).
	FetchAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_fetch_attempts_total",
		Help: "Fetch attempts by strategy and status class.",
	}, []string{"strategy", "status_class"})

	// FetchErrors counts classified fetch errors.
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_fetch_errors_total",
		Help: "Fetch errors by stable error class.",
	}, []string{"error_class"})

	// FetchLatency observes fetch latency per pool.
	FetchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "radar_fetch_latency_seconds",
		Help:    "Fetch latency by worker pool.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"pool"})

	// SnapshotsCreated counts new content-addressed snapshots.
	SnapshotsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "radar_snapshots_created_total",
		Help: "Snapshots inserted (changed content only).",
	})

	// ExtractedItems counts items produced per strategy.
	ExtractedItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_extracted_items_total",
		Help: "Extracted items by strategy.",
	}, []string{"strategy"})

	// ExtractEmpty counts extractions that yielded zero items.
	ExtractEmpty = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_extract_empty_total",
		Help: "Extractions producing no items, by strategy.",
	}, []string{"strategy"})

	// OrganizedDocs counts organizer outcomes
	// (created, versioned, dropped_unchanged, error).
	OrganizedDocs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_organized_docs_total",
		Help: "Organizer outcomes per incoming item.",
	}, []string{"outcome"})

	// EventLinks counts event linkage decisions
	// (strong_anchor, prior_version, simhash, created).
	EventLinks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_event_links_total",
		Help: "Event linkage decisions by method.",
	}, []string{"method"})

	// StateTransitions counts effective status transitions.
	StateTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_state_transitions_total",
		Help: "Effective event status transitions.",
	}, []string{"to_status"})

	// Merges counts merge operations by reason code.
	Merges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_merges_total",
		Help: "Event merges by reason code.",
	}, []string{"reason_code"})

	// EventScores observes computed scores by type and lane.
	EventScores = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "radar_event_scores",
		Help:    "Computed event scores by score type and lane.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	}, []string{"score_type", "lane"})

	// UnverifiedViralEvents counts UNVERIFIED_VIRAL flaggings per lane.
	UnverifiedViralEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_unverified_viral_events_total",
		Help: "Events flagged UNVERIFIED_VIRAL, by lane.",
	}, []string{"lane"})

	// AlertsSent counts delivered alerts.
	AlertsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "radar_alerts_sent_total",
		Help: "Alerts delivered to the internal channel.",
	})

	// AlertsSuppressed counts suppressed alerts (cooldown, duplicate).
	AlertsSuppressed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_alerts_suppressed_total",
		Help: "Alerts suppressed before delivery.",
	}, []string{"why"})

	// StarvationIncidents counts DATA_STARVATION detections per domain.
	StarvationIncidents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_starvation_incidents_total",
		Help: "DATA_STARVATION incidents by source domain.",
	}, []string{"domain"})

	// QueueDepth tracks the buffered depth of each typed queue.
	QueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "radar_queue_depth",
		Help: "Buffered task count per typed queue.",
	}, []string{"queue"})

	// StreamClients tracks connected push-stream clients.
	StreamClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "radar_stream_clients",
		Help: "Connected SSE clients.",
	})
)

// Handler returns the Prometheus text exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
