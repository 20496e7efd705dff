//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/csg8/suanmingapp/internal/usecase"
	"github.com/csg8/suanmingapp/pkg/config"
	"github.com/csg8/suanmingapp/pkg/server"
)

var chartSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideLunarConverter,
	ProvideCache,
	ProvideChartArchive,
	ProvideEventPublisher,
	ProvideChartService,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		chartSet,
		ProvideChartsHandler,
		ProvideRateLimiter,
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeChartService wires the chart use case without the HTTP server.
func InitializeChartService(cfg *config.Config) (*usecase.ChartService, error) {
	wire.Build(chartSet)
	return &usecase.ChartService{}, nil
}
