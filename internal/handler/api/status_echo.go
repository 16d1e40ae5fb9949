package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"TradeScope/internal/domain/models"
	"TradeScope/internal/history"
	cache "TradeScope/internal/service/cache"
	"TradeScope/internal/usecase"
	"TradeScope/pkg/httpx"
	xlogger "TradeScope/pkg/logger"
)

const metricsCacheTTL = 5 * time.Second

// StatusEchoHandler serves the analyzer's live state and the most recently
// computed metrics.
type StatusEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
	store    *history.Store
	cache    *cache.TTLValue[models.Metrics]
}

func NewStatusEchoHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer, store *history.Store) *StatusEchoHandler {
	return &StatusEchoHandler{
		logger:   logger,
		analyzer: analyzer,
		store:    store,
		cache:    cache.NewTTLValue[models.Metrics](),
	}
}

func (h *StatusEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	g := e.Group("/status")
	g.GET("/metrics", h.Metrics)
}

// Health reports the loop state and series lengths.
func (h *StatusEchoHandler) Health(c echo.Context) error {
	market, asset, cash := h.store.Lengths()
	return httpx.SuccessResponse(c, map[string]interface{}{
		"status":        "ok",
		"state":         h.analyzer.State().String(),
		"market_points": market,
		"asset_points":  asset,
		"cash_points":   cash,
		"dropped":       h.store.Dropped(),
	})
}

// Metrics returns the latest computed metric set, or 404 before the first
// successful computation.
func (h *StatusEchoHandler) Metrics(c echo.Context) error {
	if v, ok := h.cache.Get(); ok {
		return httpx.SuccessResponse(c, v)
	}

	m, ok := h.analyzer.LatestMetrics()
	if !ok {
		return httpx.NotFoundResponse(c, "no metrics computed yet")
	}

	h.cache.Put(m, metricsCacheTTL)
	return httpx.SuccessResponse(c, m)
}

var _ httpx.Handler = (*StatusEchoHandler)(nil)
