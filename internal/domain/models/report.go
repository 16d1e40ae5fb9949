package models

import "time"

// Report is the terminal artifact of a run: the computed metrics plus run
// context. It is what the exporter ships to Kafka or ClickHouse.
type Report struct {
	RunID        string    `json:"run_id"`
	GeneratedAt  time.Time `json:"generated_at"`
	MarketPoints int       `json:"market_points"`
	AssetPoints  int       `json:"asset_points"`
	ChartPath    string    `json:"chart_path,omitempty"`
	Metrics      Metrics   `json:"metrics"`
}
