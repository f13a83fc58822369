package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the spending-limit engine.
// A nil *Metrics is valid and records nothing, which keeps unit tests free
// of the default registry.
type Metrics struct {
	batchesProcessed prometheus.Counter
	limitUpdates     *prometheus.CounterVec
	enforcementRuns  *prometheus.CounterVec
	limitViolations  *prometheus.CounterVec
	batchSize        prometheus.Histogram
}

// New creates the collectors and registers them with the default registry.
func New() *Metrics {
	return &Metrics{
		batchesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spendguard_batches_processed_total",
			Help: "Total number of batch limit-update calls processed",
		}),
		limitUpdates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "spendguard_limit_updates_total",
			Help: "Total number of per-item limit updates by result",
		}, []string{"result"}),
		enforcementRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "spendguard_enforcement_checks_total",
			Help: "Total number of spend enforcement checks by result",
		}, []string{"result"}),
		limitViolations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "spendguard_limit_violations_total",
			Help: "Total number of limit violations by window",
		}, []string{"window"}),
		batchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "spendguard_batch_size",
			Help:    "Request count per batch call",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}

// BatchProcessed records one completed batch call.
func (m *Metrics) BatchProcessed(size, successful, failed int) {
	if m == nil {
		return
	}
	m.batchesProcessed.Inc()
	m.batchSize.Observe(float64(size))
	m.limitUpdates.WithLabelValues("success").Add(float64(successful))
	m.limitUpdates.WithLabelValues("failure").Add(float64(failed))
}

// EnforcementAllowed records a spend that passed both windows.
func (m *Metrics) EnforcementAllowed() {
	if m == nil {
		return
	}
	m.enforcementRuns.WithLabelValues("allowed").Inc()
}

// EnforcementRejected records a rejected spend for the violated window.
func (m *Metrics) EnforcementRejected(window string) {
	if m == nil {
		return
	}
	m.enforcementRuns.WithLabelValues("rejected").Inc()
	m.limitViolations.WithLabelValues(window).Inc()
}
