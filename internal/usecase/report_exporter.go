package usecase

import (
	"context"
	"fmt"

	"TradeScope/internal/domain/models"
	domrepo "TradeScope/internal/domain/repository"
)

// ReportExporter ships the final report to the configured backend.
type ReportExporter struct {
	pub     domrepo.ReportPublisher
	store   domrepo.ReportStore
	metrics domrepo.Metrics
	backend string
}

// NewReportExporter creates a new ReportExporter instance.
func NewReportExporter(
	pub domrepo.ReportPublisher,
	store domrepo.ReportStore,
	metrics domrepo.Metrics,
	backend string,
) *ReportExporter {
	return &ReportExporter{
		pub:     pub,
		store:   store,
		metrics: metrics,
		backend: backend,
	}
}

// Export routes the report to the configured backend. Backend "none" is a
// no-op; an unknown backend is an error.
func (e *ReportExporter) Export(ctx context.Context, r *models.Report) error {
	if r == nil {
		return fmt.Errorf("report is nil")
	}

	var err error
	switch e.backend {
	case "", "none":
		return nil
	case "kafka":
		err = e.pub.Publish(ctx, r)
	case "clickhouse":
		err = e.store.Store(ctx, r)
	default:
		err = fmt.Errorf("unknown backend: %s", e.backend)
	}

	if err != nil {
		e.metrics.RecordExport(e.backend, "error")
		return fmt.Errorf("export report: %w", err)
	}
	e.metrics.RecordExport(e.backend, "ok")
	return nil
}

// Close closes underlying sink resources if available.
func (e *ReportExporter) Close() {
	if e.pub != nil {
		_ = e.pub.Close()
	}
	if e.store != nil {
		_ = e.store.Close()
	}
}
