package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"TradeScope/internal/analytics"
	"TradeScope/internal/domain/models"
	"TradeScope/internal/history"
	"TradeScope/internal/render"
	pkgbus "TradeScope/pkg/bus"
	xlogger "TradeScope/pkg/logger"
)

// recorderStub counts telemetry calls without touching the global
// Prometheus registry.
type recorderStub struct {
	mu      sync.Mutex
	events  map[string]int
	dropped int
	errors  map[string]int
	exports map[string]int
	renders int
}

func newRecorderStub() *recorderStub {
	return &recorderStub{
		events:  map[string]int{},
		errors:  map[string]int{},
		exports: map[string]int{},
	}
}

func (r *recorderStub) RecordEvent(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[kind]++
}

func (r *recorderStub) RecordDroppedObservation() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropped++
}

func (r *recorderStub) RecordLastPrice(string, float64) {}

func (r *recorderStub) RecordRenderDuration(float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders++
}

func (r *recorderStub) RecordExport(backend, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exports[backend+"/"+result]++
}

func (r *recorderStub) RecordError(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors[kind]++
}

// surfaceStub records render calls and can fail on demand.
type surfaceStub struct {
	renders int
	plan    *models.RenderPlan
	err     error
}

func (s *surfaceStub) Render(_ context.Context, plan *models.RenderPlan) error {
	s.renders++
	s.plan = plan
	return s.err
}

func (s *surfaceStub) Path() string { return "test.png" }

func newTestAnalyzer(b *pkgbus.Bus, surface *surfaceStub, rec *recorderStub) *Analyzer {
	return NewAnalyzer(
		b.Events(),
		history.NewStore(),
		analytics.NewEngine(),
		render.NewPlanner(),
		surface,
		nil,
		rec,
		xlogger.Nop(),
	)
}

func publishDays(t *testing.T, b *pkgbus.Bus, closes, assets []float64) {
	t.Helper()
	for i := range closes {
		require.NoError(t, b.PublishMarketData("2024-01-02", "SPY", closes[i], closes[i], closes[i], closes[i], 1000))
		require.NoError(t, b.PublishPortfolioInfo(models.NewPortfolio(assets[i])))
	}
}

func TestAnalyzerRendersOnceOnShutdown(t *testing.T) {
	b := pkgbus.New()
	surface := &surfaceStub{}
	rec := newRecorderStub()
	a := newTestAnalyzer(b, surface, rec)

	publishDays(t, b, []float64{100, 105, 110}, []float64{1000, 1100, 1210})
	require.NoError(t, b.PublishShutdown())

	require.Equal(t, StateRunning, a.State())
	require.NoError(t, a.Run(context.Background()))

	require.Equal(t, StateStopped, a.State())
	require.Equal(t, 1, surface.renders)
	require.Len(t, surface.plan.Benchmark, 3)
	require.Len(t, surface.plan.AssetValue, 3)

	m, ok := a.LatestMetrics()
	require.True(t, ok)
	require.InDelta(t, 0.21, m.PortfolioReturn, 1e-12)
	require.Equal(t, 3, rec.events["market_data"])
	require.Equal(t, 1, rec.events["shutdown"])
}

func TestAnalyzerStopsWhenBusCloses(t *testing.T) {
	b := pkgbus.New()
	surface := &surfaceStub{}
	a := newTestAnalyzer(b, surface, newRecorderStub())

	publishDays(t, b, []float64{100, 105}, []float64{1000, 1050})
	b.Close()

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, StateStopped, a.State())
	require.Equal(t, 0, surface.renders)

	_, ok := a.LatestMetrics()
	require.False(t, ok)
}

func TestAnalyzerDropsPortfolioBeforeMarket(t *testing.T) {
	b := pkgbus.New()
	surface := &surfaceStub{}
	rec := newRecorderStub()
	a := newTestAnalyzer(b, surface, rec)

	require.NoError(t, b.PublishPortfolioInfo(models.NewPortfolio(1000)))
	require.NoError(t, b.PublishShutdown())

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, 1, rec.dropped)
	// Nothing recorded means metrics cannot be computed and no render runs.
	require.Equal(t, 0, surface.renders)
	require.Equal(t, 1, rec.errors["compute"])
}

func TestAnalyzerIgnoresOrderEvents(t *testing.T) {
	b := pkgbus.New()
	surface := &surfaceStub{}
	a := newTestAnalyzer(b, surface, newRecorderStub())

	require.NoError(t, b.PublishOrderPlace(models.Order{Symbol: "SPY", Direction: models.Buy, Amount: 10, LimitPrice: 100}))
	publishDays(t, b, []float64{100, 110}, []float64{1000, 1100})
	require.NoError(t, b.PublishShutdown())

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, StateStopped, a.State())
	require.Equal(t, 1, surface.renders)
}

func TestAnalyzerRenderFailureIsNotFatal(t *testing.T) {
	b := pkgbus.New()
	surface := &surfaceStub{err: context.DeadlineExceeded}
	rec := newRecorderStub()
	a := newTestAnalyzer(b, surface, rec)

	publishDays(t, b, []float64{100, 110}, []float64{1000, 1100})
	require.NoError(t, b.PublishShutdown())

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, StateStopped, a.State())
	require.Equal(t, 1, rec.errors["render"])

	// Metrics still land even when the surface fails.
	_, ok := a.LatestMetrics()
	require.True(t, ok)
}
