package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duvidas_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "duvidas_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// QuestionsCreated counts questions created, split by anonymous vs authenticated.
	QuestionsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duvidas_questions_created_total",
		Help: "Total number of questions created",
	}, []string{"anonymous"})

	// RepliesCreated counts replies created, split by anonymous vs authenticated.
	RepliesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duvidas_replies_created_total",
		Help: "Total number of replies created",
	}, []string{"anonymous"})

	// NotificationsCreated counts reply notifications fanned out to question owners.
	NotificationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duvidas_notifications_created_total",
		Help: "Total number of reply notifications created",
	})

	// NotificationCleanupFailures counts best-effort notification cleanups that failed
	// after a question deletion.
	NotificationCleanupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duvidas_notification_cleanup_failures_total",
		Help: "Total number of failed notification cleanups after question deletion",
	})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
