package analytics

import (
	"errors"
	"math"

	"TradeScope/internal/domain/models"
)

var (
	// ErrInsufficientData means a required series has fewer than two points.
	ErrInsufficientData = errors.New("insufficient data for metrics calculation")
	// ErrInvalidSeriesValue means the asset series contains a NaN, infinite
	// or non-positive value, which makes drawdown undefined.
	ErrInvalidSeriesValue = errors.New("asset history contains invalid or non-positive values")
)

const (
	periodsPerYear = 252.0
	riskFreeRate   = 0.05
)

// Engine computes the per-run risk and return statistics. Compute is a pure
// function of its inputs; the same snapshot always yields identical results.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() Engine {
	return Engine{}
}

// Compute derives the full metric set from the benchmark and asset series.
//
// Division-by-zero cases whose numerator is structurally zero (single-period
// variance, flat benchmark) are not guarded; they surface as NaN or Inf in
// the affected fields. Only the two sentinel errors abort the computation.
func (Engine) Compute(market, asset models.Series) (models.Metrics, error) {
	if len(market) < 2 || len(asset) < 2 {
		return models.Metrics{}, ErrInsufficientData
	}

	returns := periodReturns(asset)
	benchmarkReturns := periodReturns(market)

	marketReturn := 1.0
	for _, r := range benchmarkReturns {
		marketReturn *= 1.0 + r
	}
	marketReturn -= 1.0

	portfolioReturn := asset[len(asset)-1].Value/asset[0].Value - 1.0

	n := float64(len(returns))
	annualizedMarketReturn := math.Pow(1.0+marketReturn, periodsPerYear/n) - 1.0
	annualizedPortfolioReturn := math.Pow(1.0+portfolioReturn, periodsPerYear/n) - 1.0

	meanReturn := mean(returns)
	variance := 0.0
	for _, r := range returns {
		variance += (r - meanReturn) * (r - meanReturn)
	}
	variance /= n - 1.0
	volatility := math.Sqrt(variance)

	annualizedExcessReturn := meanReturn*periodsPerYear - riskFreeRate
	annualizedVolatility := volatility * math.Sqrt(periodsPerYear)
	sharpeRatio := annualizedExcessReturn / annualizedVolatility

	for _, p := range asset {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) || p.Value <= 0 {
			return models.Metrics{}, ErrInvalidSeriesValue
		}
	}

	peak := asset[0].Value
	maxDrawdown := 0.0
	for _, p := range asset {
		if p.Value > peak {
			peak = p.Value
		}
		if dd := p.Value/peak - 1.0; dd < maxDrawdown {
			maxDrawdown = dd
		}
	}

	// Downside deviation over negative periods only; a run with no losing
	// period has no observed downside risk and the ratio is +Inf, not an
	// error.
	downsideSum := 0.0
	downsideCount := 0
	for _, r := range returns {
		if r < 0 {
			downsideSum += r * r
			downsideCount++
		}
	}
	sortinoRatio := math.Inf(1)
	if downsideCount > 0 {
		downsideDeviation := math.Sqrt(downsideSum / float64(downsideCount))
		if downsideDeviation > 0 {
			sortinoRatio = annualizedExcessReturn / (downsideDeviation * math.Sqrt(periodsPerYear))
		}
	}

	// Raw summed products, not centered covariance/variance. This matches
	// the reference behavior exactly and must not be "fixed" to the
	// textbook formula.
	pairs := len(returns)
	if len(benchmarkReturns) < pairs {
		pairs = len(benchmarkReturns)
	}
	covariance := 0.0
	benchVariance := 0.0
	for i := 0; i < pairs; i++ {
		covariance += returns[i] * benchmarkReturns[i]
	}
	for _, r := range benchmarkReturns {
		benchVariance += r * r
	}
	beta := covariance / benchVariance
	alpha := annualizedPortfolioReturn - riskFreeRate - beta*(annualizedMarketReturn-riskFreeRate)

	excess := make([]float64, pairs)
	for i := 0; i < pairs; i++ {
		excess[i] = returns[i] - benchmarkReturns[i]
	}
	meanExcess := mean(excess)
	excessVariance := 0.0
	for _, e := range excess {
		excessVariance += (e - meanExcess) * (e - meanExcess)
	}
	excessVariance /= float64(len(excess)) - 1.0
	trackingError := math.Sqrt(excessVariance)
	informationRatio := meanExcess / trackingError

	return models.Metrics{
		MarketReturn:              marketReturn,
		PortfolioReturn:           portfolioReturn,
		AnnualizedPortfolioReturn: annualizedPortfolioReturn,
		Volatility:                volatility,
		SharpeRatio:               sharpeRatio,
		MaxDrawdown:               maxDrawdown,
		Alpha:                     alpha,
		Beta:                      beta,
		SortinoRatio:              sortinoRatio,
		InformationRatio:          informationRatio,
		TrackingError:             trackingError,
		LongestDrawdown:           longestDrawdown(asset),
	}, nil
}

// periodReturns computes the per-step simple return over consecutive points.
func periodReturns(s models.Series) []float64 {
	out := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		out = append(out, (s[i].Value-s[i-1].Value)/s[i-1].Value)
	}
	return out
}

// longestDrawdown scans once, tracking the running peak and the index where
// the value first fell below it. An episode closes when the value recovers
// to or above the peak, or when the series ends; its length is measured in
// index units.
func longestDrawdown(asset models.Series) int {
	peak := asset[0].Value
	start := -1
	longest := 0
	for i, p := range asset {
		if start >= 0 && (p.Value >= peak || i == len(asset)-1) {
			if length := i - start; length > longest {
				longest = length
			}
			start = -1
		}
		if p.Value > peak {
			peak = p.Value
			start = -1
		} else if p.Value < peak && start < 0 {
			start = i
		}
	}
	return longest
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
