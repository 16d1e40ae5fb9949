package di

import (
	"context"
	"fmt"
	"time"

	"TradeScope/internal/analytics"
	"TradeScope/internal/domain/repository"
	"TradeScope/internal/history"
	"TradeScope/internal/render"
	"TradeScope/internal/render/gochart"
	internalrepo "TradeScope/internal/repository"
	"TradeScope/internal/usecase"
	pkgbus "TradeScope/pkg/bus"
	pkgch "TradeScope/pkg/clickhouse"
	"TradeScope/pkg/config"
	pkgkafka "TradeScope/pkg/kafka"
	xlogger "TradeScope/pkg/logger"
	"TradeScope/pkg/metrics"
	"TradeScope/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	return xlogger.New(&xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideBus creates the event bus.
func ProvideBus(cfg *config.Config) *pkgbus.Bus {
	return pkgbus.New(pkgbus.WithCapacity(cfg.Bus.Capacity))
}

// ProvideHistoryStore creates the series store.
func ProvideHistoryStore() *history.Store {
	return history.NewStore()
}

// ProvideEngine creates the metrics engine.
func ProvideEngine() analytics.Engine {
	return analytics.NewEngine()
}

// ProvidePlanner creates the render planner.
func ProvidePlanner() *render.Planner {
	return render.NewPlanner()
}

// ProvideRenderSurface creates the PNG chart surface.
func ProvideRenderSurface(cfg *config.Config) repository.RenderSurface {
	return gochart.NewSurface(cfg.Output.ChartPath)
}

// ProvideClickHouseClient creates a ClickHouse client and ensures the
// report schema exists. It is nil unless the clickhouse backend is
// configured.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Export.Backend != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.Export.ClickHouse.Host),
		pkgch.WithPort(cfg.Export.ClickHouse.Port),
		pkgch.WithDatabase(cfg.Export.ClickHouse.Database),
		pkgch.WithCredentials(cfg.Export.ClickHouse.User, cfg.Export.ClickHouse.Password),
		pkgch.WithMaxConnections(5, 2),
		pkgch.WithTimeouts(cfg.Export.ClickHouse.DialTimeout, cfg.Export.ClickHouse.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + cfg.Export.ClickHouse.Database,
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideReportStore creates the ClickHouse report sink.
func ProvideReportStore(chClient *pkgch.Client, cfg *config.Config) (repository.ReportStore, error) {
	if chClient == nil {
		return nil, nil
	}
	table := cfg.Export.ClickHouse.Database + "." + cfg.Export.ClickHouse.Table
	store := internalrepo.NewClickHouseReportStore(chClient.DB(), table)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("report store init: %w", err)
	}
	return store, nil
}

// ProvideReportPublisher creates the Kafka report sink. It is nil unless
// the kafka backend is configured.
func ProvideReportPublisher(cfg *config.Config) (repository.ReportPublisher, error) {
	if cfg.Export.Backend != "kafka" {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Export.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Export.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Export.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Export.Kafka.MaxAttempts),
		pkgkafka.WithTimeouts(cfg.Export.Kafka.WriteTimeout, cfg.Export.Kafka.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return internalrepo.NewKafkaReportPublisher(producer, cfg.Export.Kafka.Topic), nil
}

// ProvideReportExporter creates the report exporter use case.
func ProvideReportExporter(
	pub repository.ReportPublisher,
	store repository.ReportStore,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.ReportExporter {
	return usecase.NewReportExporter(pub, store, m, cfg.Export.Backend)
}

// ProvideAnalyzer creates the analyzer use case.
func ProvideAnalyzer(
	bus *pkgbus.Bus,
	store *history.Store,
	engine analytics.Engine,
	planner *render.Planner,
	surface repository.RenderSurface,
	exporter *usecase.ReportExporter,
	m repository.Metrics,
	logger *xlogger.Logger,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(bus.Events(), store, engine, planner, surface, exporter, m, logger)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *xlogger.Logger,
	bus *pkgbus.Bus,
	analyzer *usecase.Analyzer,
	store *history.Store,
	exporter *usecase.ReportExporter,
	chClient *pkgch.Client,
) *server.App {
	return server.New(cfg, logger, bus, analyzer, store, exporter, chClient)
}
