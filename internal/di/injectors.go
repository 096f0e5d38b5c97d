//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"skilld/internal"
	"skilld/internal/controllers"
	"skilld/internal/persistence"
	"skilld/internal/providers"
	"skilld/internal/render"
	"skilld/internal/services"
	"skilld/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		services.NewSnapshotService,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		persistence.NewZstdCompressor,
		persistence.NewSource,
		persistence.NewScheduler,
		render.NewRenderer,
		internal.NewLink,
		controllers.NewApiController,
		controllers.NewSkillsController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
