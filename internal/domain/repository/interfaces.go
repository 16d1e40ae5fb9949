package repository

import (
	"context"

	"TradeScope/internal/domain/models"
)

// RenderSurface draws a completed plan onto some backend (PNG file, test
// double). The core decides what to draw; the surface owns pixels and fonts.
type RenderSurface interface {
	Render(ctx context.Context, plan *models.RenderPlan) error
}

// ReportPublisher ships the final report to a message broker.
type ReportPublisher interface {
	Publish(ctx context.Context, r *models.Report) error
	Close() error
}

// ReportStore persists the final report to a database.
type ReportStore interface {
	Init(ctx context.Context) error // ensure tables exist
	Store(ctx context.Context, r *models.Report) error
	Close() error
}

// Metrics records operational telemetry for the analyzer.
type Metrics interface {
	RecordEvent(kind string)
	RecordDroppedObservation()
	RecordLastPrice(symbol string, price float64)
	RecordRenderDuration(seconds float64)
	RecordExport(backend, result string)
	RecordError(kind string)
}
