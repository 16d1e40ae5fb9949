package render

import (
	"fmt"
	"math"
	"sync"

	"TradeScope/internal/domain/models"
)

const chartTitle = "Market Data and Asset History"

// Planner turns raw series plus computed metrics into a scale-independent
// drawing plan. It remembers the series lengths of the last produced plan
// and reports "no update" when nothing was appended since, so redundant
// renders are skipped.
type Planner struct {
	mu            sync.Mutex
	lastMarketLen int
	lastAssetLen  int
}

// NewPlanner creates a Planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// Plan builds the drawing plan. The second return value is false when the
// input lengths match the previously planned lengths, including the case of
// two empty series; the caller skips the surface entirely.
func (p *Planner) Plan(market, asset, cash models.Series, m models.Metrics) (*models.RenderPlan, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(market) == p.lastMarketLen && len(asset) == p.lastAssetLen {
		return nil, false
	}
	p.lastMarketLen = len(market)
	p.lastAssetLen = len(asset)

	// First values standardize each series against itself; an empty series
	// falls back to 1.0 so the divisor is never zero here. A genuinely zero
	// first value would poison the standardized series and is rejected
	// upstream by the metrics engine for the asset series.
	firstMarket := 1.0
	if len(market) > 0 {
		firstMarket = market[0].Value
	}
	firstAsset := 1.0
	if len(asset) > 0 {
		firstAsset = asset[0].Value
	}

	labels := make([]string, len(market))
	benchmark := make([]float64, len(market))
	for i, pt := range market {
		labels[i] = pt.Label
		benchmark[i] = pt.Value / firstMarket
	}

	assetValue := make([]float64, len(asset))
	positionValue := make([]float64, len(asset))
	for i, pt := range asset {
		assetValue[i] = pt.Value / firstAsset
		positionValue[i] = (pt.Value - cashAt(cash, pt.Label)) / firstAsset
	}

	yMin, yMax := bounds(benchmark, assetValue, positionValue)

	xMax := len(market)
	if len(asset) > xMax {
		xMax = len(asset)
	}
	xMax += len(market) / 25

	plan := &models.RenderPlan{
		Title:         chartTitle,
		Labels:        labels,
		Benchmark:     benchmark,
		AssetValue:    assetValue,
		PositionValue: positionValue,
		XMax:          xMax,
		YMin:          yMin,
		YMax:          yMax,
		TextX:         len(market) / 50,
		Lines:         metricLines(m, yMin, yMax),
	}
	return plan, true
}

// cashAt looks up the cash value recorded under the given timestamp label;
// an unmatched label contributes zero cash.
func cashAt(cash models.Series, label string) float64 {
	for _, pt := range cash {
		if pt.Label == label {
			return pt.Value
		}
	}
	return 0
}

func bounds(series ...[]float64) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// metricLines formats the twelve summary lines and lays them out from the
// top of the value axis downward.
func metricLines(m models.Metrics, yMin, yMax float64) []models.TextLine {
	texts := []string{
		fmt.Sprintf("Market Return: %.2f%%", m.MarketReturn*100),
		fmt.Sprintf("Portfolio Return: %.2f%%", m.PortfolioReturn*100),
		fmt.Sprintf("Annualized Portfolio Return: %.2f%%", m.AnnualizedPortfolioReturn*100),
		fmt.Sprintf("Volatility: %.4f", m.Volatility),
		fmt.Sprintf("Sharpe Ratio: %.2f", m.SharpeRatio),
		fmt.Sprintf("Max Drawdown: %.2f%%", m.MaxDrawdown*100),
		fmt.Sprintf("Alpha: %.4f", m.Alpha),
		fmt.Sprintf("Beta: %.4f", m.Beta),
		fmt.Sprintf("Sortino Ratio: %.4f", m.SortinoRatio),
		fmt.Sprintf("Information Ratio: %.4f", m.InformationRatio),
		fmt.Sprintf("Tracking Error: %.4f", m.TrackingError),
		fmt.Sprintf("Longest Drawdown Period: %d days", m.LongestDrawdown),
	}

	y := yMax + 1.0 - (yMax-yMin)/30.0
	step := (yMax + 1.0 - yMin) / 42.0
	lines := make([]models.TextLine, len(texts))
	for i, t := range texts {
		lines[i] = models.TextLine{Text: t, Y: y}
		y -= step
	}
	return lines
}
