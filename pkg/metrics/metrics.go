// Package metrics provides Prometheus metrics for rank-watch runs.
//
// The process is a run-to-completion batch job with nothing to
// scrape, so metrics are written to a textfile for the node_exporter
// textfile collector instead of being served over HTTP.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a run.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  *prometheus.Registry

	fetchDuration        prometheus.Histogram
	teamsFetched         prometheus.Gauge
	trackedRank          prometheus.Gauge
	notificationsSent    prometheus.Counter
	notificationsFailed  prometheus.Counter
	notificationsSkipped prometheus.Counter
	lastRunUnix          prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a new metrics manager with default configuration.
// Metrics live on a private registry so the default Go collectors
// never leak into the textfile output.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "rankwatch",
		subsystem: "run",
		enabled:   true,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.fetchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_seconds",
		Help:      "Time spent fetching the leaderboard snapshot.",
		Buckets:   prometheus.DefBuckets,
	})
	m.teamsFetched = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teams_fetched",
		Help:      "Number of teams in the fetched snapshot.",
	})
	m.trackedRank = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tracked_rank",
		Help:      "Tracked team's rank in the new snapshot (1 = best).",
	})
	m.notificationsSent = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_sent_total",
		Help:      "Notifications delivered successfully.",
	})
	m.notificationsFailed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_failed_total",
		Help:      "Notification deliveries that failed.",
	})
	m.notificationsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_skipped_total",
		Help:      "Runs where no significant change warranted a notification.",
	})
	m.lastRunUnix = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the last completed run.",
	})

	return m
}

// ObserveFetchDuration records one leaderboard fetch.
func (m *Manager) ObserveFetchDuration(d time.Duration) {
	if !m.enabled {
		return
	}
	m.fetchDuration.Observe(d.Seconds())
}

// SetTeamsFetched records the snapshot size.
func (m *Manager) SetTeamsFetched(n int) {
	if !m.enabled {
		return
	}
	m.teamsFetched.Set(float64(n))
}

// SetTrackedRank records the tracked team's new rank.
func (m *Manager) SetTrackedRank(rank int) {
	if !m.enabled {
		return
	}
	m.trackedRank.Set(float64(rank))
}

// RecordNotificationSent counts a successful delivery.
func (m *Manager) RecordNotificationSent() {
	if !m.enabled {
		return
	}
	m.notificationsSent.Inc()
}

// RecordNotificationFailed counts a failed delivery.
func (m *Manager) RecordNotificationFailed() {
	if !m.enabled {
		return
	}
	m.notificationsFailed.Inc()
}

// RecordNotificationSkipped counts an insignificant-change run.
func (m *Manager) RecordNotificationSkipped() {
	if !m.enabled {
		return
	}
	m.notificationsSkipped.Inc()
}

// SetLastRun records run completion time.
func (m *Manager) SetLastRun(t time.Time) {
	if !m.enabled {
		return
	}
	m.lastRunUnix.Set(float64(t.Unix()))
}

// Global wrappers for the singleton manager.

func ObserveFetchDuration(d time.Duration) { globalManager.ObserveFetchDuration(d) }
func SetTeamsFetched(n int)                { globalManager.SetTeamsFetched(n) }
func SetTrackedRank(rank int)              { globalManager.SetTrackedRank(rank) }
func RecordNotificationSent()              { globalManager.RecordNotificationSent() }
func RecordNotificationFailed()            { globalManager.RecordNotificationFailed() }
func RecordNotificationSkipped()           { globalManager.RecordNotificationSkipped() }
func SetLastRun(t time.Time)               { globalManager.SetLastRun(t) }

// WriteTextfile exports the singleton manager's metrics.
func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }
