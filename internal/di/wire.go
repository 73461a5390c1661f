//go:build wireinject
// +build wireinject

package di

import (
	"KrakenLTP/pkg/config"
	"KrakenLTP/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideHTTPClient,
		ProvideTickerSource,
		ProvideResponseCache,
		ProvideRateLimiter,

		// Use cases
		ProvideLtpAggregator,

		// Transport
		ProvideLtpHandler,
		ProvideApp,
	)
	return nil, nil, nil
}
