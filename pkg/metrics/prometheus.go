package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	eventsIngested *prometheus.CounterVec
	droppedObs     prometheus.Counter
	errorsTotal    *prometheus.CounterVec
	lastPrice      *prometheus.GaugeVec
	renderDuration prometheus.Histogram
	exportsTotal   *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		eventsIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradescope_events_ingested_total",
				Help: "Total events received by the ingestion loop",
			},
			[]string{"kind"},
		),
		droppedObs: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tradescope_portfolio_observations_dropped_total",
				Help: "Portfolio observations dropped for lack of a market timestamp",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradescope_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tradescope_last_price",
				Help: "Last observed close price for a symbol",
			},
			[]string{"symbol"},
		),
		renderDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tradescope_render_duration_seconds",
				Help:    "Duration of the metrics-plus-render pass",
				Buckets: prometheus.DefBuckets,
			},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradescope_report_exports_total",
				Help: "Report export attempts by backend and result",
			},
			[]string{"backend", "result"},
		),
	}
}

// RecordEvent counts an ingested event by kind.
func (r *Recorder) RecordEvent(kind string) {
	r.eventsIngested.WithLabelValues(kind).Inc()
}

// RecordDroppedObservation counts a discarded portfolio observation.
func (r *Recorder) RecordDroppedObservation() {
	r.droppedObs.Inc()
}

// RecordLastPrice records the last close price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordRenderDuration records the duration of a render pass in seconds.
func (r *Recorder) RecordRenderDuration(seconds float64) {
	r.renderDuration.Observe(seconds)
}

// RecordExport records a report export attempt.
func (r *Recorder) RecordExport(backend, result string) {
	r.exportsTotal.WithLabelValues(backend, result).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
