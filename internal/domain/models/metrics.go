package models

import (
	"encoding/json"
	"math"
)

// Metrics is the immutable aggregate computed from one snapshot of the
// market and asset series. It is rebuilt on every render cycle and never
// mutated after construction.
//
// Fields may legitimately hold NaN or Inf: a flat benchmark leaves beta,
// alpha and the information ratio non-finite, and a series with no negative
// returns makes the Sortino ratio +Inf. Those values pass through as-is.
type Metrics struct {
	MarketReturn              float64 `json:"market_return"`
	PortfolioReturn           float64 `json:"portfolio_return"`
	AnnualizedPortfolioReturn float64 `json:"annualized_portfolio_return"`
	Volatility                float64 `json:"volatility"`
	SharpeRatio               float64 `json:"sharpe_ratio"`
	MaxDrawdown               float64 `json:"max_drawdown"`
	Alpha                     float64 `json:"alpha"`
	Beta                      float64 `json:"beta"`
	SortinoRatio              float64 `json:"sortino_ratio"`
	InformationRatio          float64 `json:"information_ratio"`
	TrackingError             float64 `json:"tracking_error"`
	LongestDrawdown           int     `json:"longest_drawdown_days"`
}

// MarshalJSON emits non-finite fields as null; JSON has no representation
// for NaN or Inf and encoding/json refuses them outright.
func (m Metrics) MarshalJSON() ([]byte, error) {
	fin := func(v float64) *float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	}
	return json.Marshal(struct {
		MarketReturn              *float64 `json:"market_return"`
		PortfolioReturn           *float64 `json:"portfolio_return"`
		AnnualizedPortfolioReturn *float64 `json:"annualized_portfolio_return"`
		Volatility                *float64 `json:"volatility"`
		SharpeRatio               *float64 `json:"sharpe_ratio"`
		MaxDrawdown               *float64 `json:"max_drawdown"`
		Alpha                     *float64 `json:"alpha"`
		Beta                      *float64 `json:"beta"`
		SortinoRatio              *float64 `json:"sortino_ratio"`
		InformationRatio          *float64 `json:"information_ratio"`
		TrackingError             *float64 `json:"tracking_error"`
		LongestDrawdown           int      `json:"longest_drawdown_days"`
	}{
		MarketReturn:              fin(m.MarketReturn),
		PortfolioReturn:           fin(m.PortfolioReturn),
		AnnualizedPortfolioReturn: fin(m.AnnualizedPortfolioReturn),
		Volatility:                fin(m.Volatility),
		SharpeRatio:               fin(m.SharpeRatio),
		MaxDrawdown:               fin(m.MaxDrawdown),
		Alpha:                     fin(m.Alpha),
		Beta:                      fin(m.Beta),
		SortinoRatio:              fin(m.SortinoRatio),
		InformationRatio:          fin(m.InformationRatio),
		TrackingError:             fin(m.TrackingError),
		LongestDrawdown:           m.LongestDrawdown,
	})
}
