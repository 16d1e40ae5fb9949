//go:build wireinject
// +build wireinject

package di

import (
	"TradeScope/pkg/config"
	"TradeScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Foundation
		ProvideLogger,
		ProvideMetrics,
		ProvideBus,

		// Core analysis pipeline
		ProvideHistoryStore,
		ProvideEngine,
		ProvidePlanner,
		ProvideRenderSurface,

		// Export sinks
		ProvideClickHouseClient,
		ProvideReportStore,
		ProvideReportPublisher,
		ProvideReportExporter,

		// Use cases
		ProvideAnalyzer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
