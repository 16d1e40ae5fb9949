package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"TradeScope/internal/analytics"
	"TradeScope/internal/domain/models"
	domrepo "TradeScope/internal/domain/repository"
	"TradeScope/internal/history"
	"TradeScope/internal/render"
	xlogger "TradeScope/pkg/logger"
)

// State is the lifecycle phase of the analyzer loop.
type State int32

const (
	StateRunning State = iota
	StateShuttingDown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Analyzer is the single consumer of the event bus. It maintains the
// history store and, on shutdown, runs one final metrics-plus-render pass
// before terminating.
type Analyzer struct {
	events   <-chan models.Event
	store    *history.Store
	engine   analytics.Engine
	planner  *render.Planner
	surface  domrepo.RenderSurface
	exporter *ReportExporter
	metrics  domrepo.Metrics
	logger   *xlogger.Logger

	state atomic.Int32

	latestMu sync.RWMutex
	latest   *models.Metrics
}

// NewAnalyzer creates the analyzer.
func NewAnalyzer(
	events <-chan models.Event,
	store *history.Store,
	engine analytics.Engine,
	planner *render.Planner,
	surface domrepo.RenderSurface,
	exporter *ReportExporter,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
) *Analyzer {
	return &Analyzer{
		events:   events,
		store:    store,
		engine:   engine,
		planner:  planner,
		surface:  surface,
		exporter: exporter,
		metrics:  metrics,
		logger:   logger,
	}
}

// State returns the current lifecycle phase.
func (a *Analyzer) State() State {
	return State(a.state.Load())
}

// LatestMetrics returns the most recently computed metrics, if any.
func (a *Analyzer) LatestMetrics() (models.Metrics, bool) {
	a.latestMu.RLock()
	defer a.latestMu.RUnlock()
	if a.latest == nil {
		return models.Metrics{}, false
	}
	return *a.latest, true
}

// Run consumes events until a shutdown event arrives or the bus closes.
// The blocking receive is the loop's only suspension point; no error inside
// the loop is fatal, and shutdown is unconditional once signaled.
func (a *Analyzer) Run(ctx context.Context) error {
	for {
		ev, ok := <-a.events
		if !ok {
			a.logger.Warn("event bus closed without shutdown event")
			a.state.Store(int32(StateStopped))
			return nil
		}

		a.metrics.RecordEvent(ev.Type.String())

		switch ev.Type {
		case models.EventMarketData:
			a.handleMarketData(ev.MarketData)
		case models.EventPortfolioInfo:
			a.handlePortfolioInfo(ev.PortfolioInfo)
		case models.EventShutdown:
			a.state.Store(int32(StateShuttingDown))
			a.logger.Info("shutdown event received", xlogger.Uint64("event_id", ev.Shutdown.ID))
			a.finalize(ctx)
			a.state.Store(int32(StateStopped))
			a.logger.Info("analyzer stopped")
			return nil
		default:
			a.logger.Warn("unsupported event kind", xlogger.String("kind", ev.Type.String()))
		}
	}
}

func (a *Analyzer) handleMarketData(e *models.MarketDataEvent) {
	a.store.RecordMarket(models.Point{Label: e.Timestamp, Value: e.Close})
	a.metrics.RecordLastPrice(e.Symbol, e.Close)
	a.logger.Debug("market data recorded",
		xlogger.Uint64("event_id", e.ID),
		xlogger.String("timestamp", e.Timestamp),
		xlogger.Float64("close", e.Close),
	)
}

func (a *Analyzer) handlePortfolioInfo(e *models.PortfolioInfoEvent) {
	if !a.store.RecordPortfolio(e.Portfolio.Asset, e.Portfolio.Cash) {
		a.metrics.RecordDroppedObservation()
		a.logger.Warn("portfolio observation dropped, no market timestamp yet",
			xlogger.Uint64("event_id", e.ID))
		return
	}
	a.logger.Debug("portfolio recorded",
		xlogger.Uint64("event_id", e.ID),
		xlogger.Float64("asset", e.Portfolio.Asset),
		xlogger.Float64("cash", e.Portfolio.Cash),
	)
}

// finalize takes one snapshot and runs the terminal metrics, render and
// export pass. Everything here is best-effort: failures are logged and the
// loop still terminates.
func (a *Analyzer) finalize(ctx context.Context) {
	start := time.Now()
	market, asset, cash := a.store.Snapshot()

	m, err := a.engine.Compute(market, asset)
	if err != nil {
		a.metrics.RecordError("compute")
		a.logger.Warn("metrics computation failed", xlogger.Error(err))
		return
	}

	a.latestMu.Lock()
	a.latest = &m
	a.latestMu.Unlock()

	plan, updated := a.planner.Plan(market, asset, cash, m)
	if !updated {
		a.logger.Info("no updates in data, skipping render")
		return
	}

	chartPath := ""
	if err := a.surface.Render(ctx, plan); err != nil {
		a.metrics.RecordError("render")
		a.logger.Error("render failed", xlogger.Error(err))
	} else {
		if p, ok := a.surface.(interface{ Path() string }); ok {
			chartPath = p.Path()
		}
		a.logger.Info("chart rendered",
			xlogger.String("path", chartPath),
			xlogger.Int("market_points", len(market)),
			xlogger.Int("asset_points", len(asset)),
		)
	}
	a.metrics.RecordRenderDuration(time.Since(start).Seconds())

	if a.exporter == nil {
		return
	}
	report := &models.Report{
		RunID:        fmt.Sprintf("run-%d", start.Unix()),
		GeneratedAt:  time.Now(),
		MarketPoints: len(market),
		AssetPoints:  len(asset),
		ChartPath:    chartPath,
		Metrics:      m,
	}
	if err := a.exporter.Export(ctx, report); err != nil {
		a.logger.Error("report export failed", xlogger.Error(err))
	}
}
