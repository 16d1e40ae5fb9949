package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"TradeScope/internal/domain/models"
)

func mkSeries(labels []string, values []float64) models.Series {
	s := make(models.Series, len(values))
	for i := range values {
		s[i] = models.Point{Label: labels[i], Value: values[i]}
	}
	return s
}

func TestPlanSkipsWhenLengthsUnchanged(t *testing.T) {
	p := NewPlanner()
	market := mkSeries([]string{"a", "b"}, []float64{100, 110})
	asset := mkSeries([]string{"a", "b"}, []float64{200, 210})

	plan, updated := p.Plan(market, asset, nil, models.Metrics{})
	require.True(t, updated)
	require.NotNil(t, plan)

	plan, updated = p.Plan(market, asset, nil, models.Metrics{})
	require.False(t, updated)
	require.Nil(t, plan)
}

func TestPlanSkipsEmptySeriesImmediately(t *testing.T) {
	p := NewPlanner()
	_, updated := p.Plan(nil, nil, nil, models.Metrics{})
	require.False(t, updated)
}

func TestPlanReplansAfterGrowth(t *testing.T) {
	p := NewPlanner()
	market := mkSeries([]string{"a", "b"}, []float64{100, 110})
	asset := mkSeries([]string{"a", "b"}, []float64{200, 210})

	_, updated := p.Plan(market, asset, nil, models.Metrics{})
	require.True(t, updated)

	market = append(market, models.Point{Label: "c", Value: 120})
	_, updated = p.Plan(market, asset, nil, models.Metrics{})
	require.True(t, updated)
}

func TestPlanStandardizesAgainstFirstValue(t *testing.T) {
	market := mkSeries([]string{"a", "b"}, []float64{100, 110})
	asset := mkSeries([]string{"a", "b"}, []float64{200, 220})
	cash := mkSeries([]string{"a"}, []float64{50})

	plan, updated := NewPlanner().Plan(market, asset, cash, models.Metrics{})
	require.True(t, updated)

	require.Equal(t, []float64{1.0, 1.1}, plan.Benchmark)
	require.Equal(t, []float64{1.0, 1.1}, plan.AssetValue)
	// Position value subtracts the cash recorded under the same label;
	// label "b" has no cash point and contributes zero.
	require.InDelta(t, 0.75, plan.PositionValue[0], 1e-12)
	require.InDelta(t, 1.1, plan.PositionValue[1], 1e-12)
}

func TestPlanBoundsAndLayout(t *testing.T) {
	n := 100
	labels := make([]string, n)
	values := make([]float64, n)
	for i := range labels {
		labels[i] = "t"
		values[i] = 100 + float64(i)
	}
	market := mkSeries(labels, values)
	asset := mkSeries(labels, values)

	plan, updated := NewPlanner().Plan(market, asset, nil, models.Metrics{})
	require.True(t, updated)

	require.Equal(t, n+n/25, plan.XMax)
	require.Equal(t, n/50, plan.TextX)
	require.Equal(t, 1.0, plan.YMin)
	require.InDelta(t, 1.99, plan.YMax, 1e-12)
	require.Len(t, plan.Labels, n)
}

func TestPlanMetricLines(t *testing.T) {
	market := mkSeries([]string{"a", "b"}, []float64{100, 110})
	asset := mkSeries([]string{"a", "b"}, []float64{200, 220})
	m := models.Metrics{
		MarketReturn:    0.1025,
		PortfolioReturn: 0.21,
		SharpeRatio:     1.5,
		MaxDrawdown:     -0.2,
		LongestDrawdown: 3,
	}

	plan, updated := NewPlanner().Plan(market, asset, nil, m)
	require.True(t, updated)
	require.Len(t, plan.Lines, 12)

	require.Equal(t, "Market Return: 10.25%", plan.Lines[0].Text)
	require.Equal(t, "Portfolio Return: 21.00%", plan.Lines[1].Text)
	require.Equal(t, "Sharpe Ratio: 1.50", plan.Lines[4].Text)
	require.Equal(t, "Max Drawdown: -20.00%", plan.Lines[5].Text)
	require.Equal(t, "Longest Drawdown Period: 3 days", plan.Lines[11].Text)

	// Lines descend from the top of the value axis.
	for i := 1; i < len(plan.Lines); i++ {
		require.Less(t, plan.Lines[i].Y, plan.Lines[i-1].Y)
	}
}
