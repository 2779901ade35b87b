//go:build wireinject
// +build wireinject

package di

import (
	"WyckoffLab/pkg/config"
	"WyckoffLab/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Providers and stores
		ProvideMarketData,
		ProvideIdentityProvider,
		ProvideProgressStore,
		ProvideKafkaProducer,
		ProvideEventPublisher,
		ProvidePhaseRecorder,

		// Use cases
		ProvideCandleService,
		ProvideProgressUsecase,
		ProvideQuizUsecase,
		ProvideSessionDeps,

		// HTTP surface
		ProvideRouter,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
