package repository

import (
	"context"
	"database/sql"
	"fmt"

	"TradeScope/internal/domain/models"
	"TradeScope/internal/domain/repository"
	pkgkafka "TradeScope/pkg/kafka"
)

// KafkaReportPublisher implements ReportPublisher for Kafka.
type KafkaReportPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaReportPublisher creates a Kafka report publisher.
func NewKafkaReportPublisher(producer *pkgkafka.Producer, topic string) repository.ReportPublisher {
	return &KafkaReportPublisher{producer: producer, topic: topic}
}

func (p *KafkaReportPublisher) Publish(ctx context.Context, r *models.Report) error {
	return p.producer.Publish(ctx, p.topic, []byte(r.RunID), r)
}

func (p *KafkaReportPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// ClickHouseReportStore implements ReportStore for ClickHouse.
type ClickHouseReportStore struct {
	db    *sql.DB
	table string
}

// NewClickHouseReportStore creates a ClickHouse report store.
func NewClickHouseReportStore(db *sql.DB, table string) repository.ReportStore {
	return &ClickHouseReportStore{db: db, table: table}
}

func (s *ClickHouseReportStore) Init(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		run_id String,
		generated_at DateTime,
		market_points Int64,
		asset_points Int64,
		chart_path String,
		market_return Float64,
		portfolio_return Float64,
		annualized_portfolio_return Float64,
		volatility Float64,
		sharpe_ratio Float64,
		max_drawdown Float64,
		alpha Float64,
		beta Float64,
		sortino_ratio Float64,
		information_ratio Float64,
		tracking_error Float64,
		longest_drawdown_days Int64
	) ENGINE=MergeTree ORDER BY (run_id, generated_at)`, s.table)
	_, err := s.db.ExecContext(ctx, q)
	return err
}

func (s *ClickHouseReportStore) Store(ctx context.Context, r *models.Report) error {
	q := fmt.Sprintf(`INSERT INTO %s
		(run_id, generated_at, market_points, asset_points, chart_path,
		 market_return, portfolio_return, annualized_portfolio_return,
		 volatility, sharpe_ratio, max_drawdown, alpha, beta,
		 sortino_ratio, information_ratio, tracking_error, longest_drawdown_days)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, s.table)
	_, err := s.db.ExecContext(ctx, q,
		r.RunID,
		r.GeneratedAt,
		r.MarketPoints,
		r.AssetPoints,
		r.ChartPath,
		r.Metrics.MarketReturn,
		r.Metrics.PortfolioReturn,
		r.Metrics.AnnualizedPortfolioReturn,
		r.Metrics.Volatility,
		r.Metrics.SharpeRatio,
		r.Metrics.MaxDrawdown,
		r.Metrics.Alpha,
		r.Metrics.Beta,
		r.Metrics.SortinoRatio,
		r.Metrics.InformationRatio,
		r.Metrics.TrackingError,
		r.Metrics.LongestDrawdown,
	)
	return err
}

func (s *ClickHouseReportStore) Close() error {
	return nil // connection pool managed by pkg client
}
