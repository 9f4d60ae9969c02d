package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Swipe outcomes.
const (
	SwipeLogged    = "logged"
	SwipeAccess    = "access"
	SwipeDebounced = "debounced"
	SwipeUnknown   = "unknown"
)

// Ingest failure stages.
const (
	StageDropped   = "dropped"
	StageAppend    = "append"
	StagePublish   = "publish"
	StageSuspended = "publish_suspended"
)

// Metrics provides observability for the attendance module.
// Tracks reconciliation latency, produced rows, swipe outcomes and ingest failures.
type Metrics struct {
	ReconcileDuration prometheus.Histogram
	SummaryRows       *prometheus.CounterVec
	Anomalies         prometheus.Counter
	Swipes            *prometheus.CounterVec
	IngestFailures    *prometheus.CounterVec
	IngestPersisted   prometheus.Counter
}

// New creates the attendance metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReconcileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rollcall_reconcile_duration_seconds",
			Help:    "Duration of summary requests including the event fetch",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		SummaryRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rollcall_summary_rows_total",
			Help: "Summary rows produced, split into real and synthesized absence rows",
		}, []string{"kind"}),
		Anomalies: factory.NewCounter(prometheus.CounterOpts{
			Name: "rollcall_sequence_anomalies_total",
			Help: "Anomalies recorded while reconciling swipe sequences",
		}),
		Swipes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rollcall_swipes_total",
			Help: "Submitted swipes by outcome",
		}, []string{"outcome"}),
		IngestFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rollcall_ingest_failures_total",
			Help: "Swipes that could not be buffered, persisted or published",
		}, []string{"stage"}),
		IngestPersisted: factory.NewCounter(prometheus.CounterOpts{
			Name: "rollcall_ingest_persisted_total",
			Help: "Swipes persisted by the ingest worker",
		}),
	}
}

// ObserveReconcile records one summary request. Call with time.Now() at the start.
func (m *Metrics) ObserveReconcile(start time.Time, real, synthesized, anomalies int) {
	if m == nil {
		return
	}
	m.ReconcileDuration.Observe(time.Since(start).Seconds())
	m.SummaryRows.WithLabelValues("real").Add(float64(real))
	m.SummaryRows.WithLabelValues("absent").Add(float64(synthesized))
	m.Anomalies.Add(float64(anomalies))
}

// IncrementSwipe records a swipe outcome.
func (m *Metrics) IncrementSwipe(outcome string) {
	if m == nil {
		return
	}
	m.Swipes.WithLabelValues(outcome).Inc()
}

// IncrementIngestFailure records a failure at the given stage.
func (m *Metrics) IncrementIngestFailure(stage string) {
	if m == nil {
		return
	}
	m.IngestFailures.WithLabelValues(stage).Inc()
}

// IncrementPersisted records a stored swipe.
func (m *Metrics) IncrementPersisted() {
	if m == nil {
		return
	}
	m.IngestPersisted.Inc()
}
