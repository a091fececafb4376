// Package metrics provides batch-execution and progress reporting for
// tabload, with a Prometheus implementation and a no-op default.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Reporter receives execution signals from the loader. Implementations must
// be safe for reuse across insert calls on the same goroutine; the loader
// itself never calls a reporter concurrently.
type Reporter interface {
	// ObserveBatch records one executed batch.
	ObserveBatch(dialect, table string, rows int, duration time.Duration, err error)
	// ObserveLoad records one whole insert call with its chosen strategy.
	ObserveLoad(dialect, table, strategy string, rows int, duration time.Duration, err error)
	// SetProgress records fractional progress (processedRows / totalRows).
	SetProgress(table string, fraction float64)
}

// Noop is a reporter that does nothing. It is the default when no reporter
// is configured.
type Noop struct{}

// ObserveBatch does nothing.
func (Noop) ObserveBatch(_, _ string, _ int, _ time.Duration, _ error) {}

// ObserveLoad does nothing.
func (Noop) ObserveLoad(_, _, _ string, _ int, _ time.Duration, _ error) {}

// SetProgress does nothing.
func (Noop) SetProgress(_ string, _ float64) {}

// Prometheus is a Reporter backed by prometheus collectors.
type Prometheus struct {
	batchDuration *prometheus.HistogramVec
	batchTotal    *prometheus.CounterVec
	rowsProcessed *prometheus.CounterVec
	loadDuration  *prometheus.HistogramVec
	progress      *prometheus.GaugeVec
}

// NewPrometheus creates a Prometheus reporter and registers its collectors
// with the given registerer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		batchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tabload_batch_duration_seconds",
				Help:    "Duration of batch execution in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
			},
			[]string{"dialect", "table", "status"},
		),
		batchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabload_batch_total",
				Help: "Total number of executed batches",
			},
			[]string{"dialect", "table", "status"},
		),
		rowsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabload_rows_processed_total",
				Help: "Total number of rows sent to the server",
			},
			[]string{"dialect", "table"},
		),
		loadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tabload_load_duration_seconds",
				Help:    "Duration of whole insert calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 18),
			},
			[]string{"dialect", "table", "strategy", "status"},
		),
		progress: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tabload_progress_fraction",
				Help: "Fractional progress of the current insert call (0-1)",
			},
			[]string{"table"},
		),
	}
	reg.MustRegister(p.batchDuration, p.batchTotal, p.rowsProcessed, p.loadDuration, p.progress)
	return p
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObserveBatch records one executed batch.
func (p *Prometheus) ObserveBatch(dialect, table string, rows int, duration time.Duration, err error) {
	st := status(err)
	p.batchDuration.WithLabelValues(dialect, table, st).Observe(duration.Seconds())
	p.batchTotal.WithLabelValues(dialect, table, st).Inc()
	if err == nil {
		p.rowsProcessed.WithLabelValues(dialect, table).Add(float64(rows))
	}
}

// ObserveLoad records one whole insert call.
func (p *Prometheus) ObserveLoad(dialect, table, strategy string, rows int, duration time.Duration, err error) {
	p.loadDuration.WithLabelValues(dialect, table, strategy, status(err)).Observe(duration.Seconds())
}

// SetProgress records fractional progress for a table.
func (p *Prometheus) SetProgress(table string, fraction float64) {
	p.progress.WithLabelValues(table).Set(fraction)
}
