package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tailtime/internal/platform/config"
)

// @title TailTime API
// @version 1.0
// @description Backend de TailTime: mascotas, actividad diaria, eventos y registros médicos.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		injectInfra(),
		injectAdapters(),
		injectHTTP(),
		fx.Invoke(
			startServer,
			startDailyReset,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		newLogger,
		newLocation,
		newRepositories,
	)
}

func injectAdapters() fx.Option {
	return fx.Provide(
		newJWT,
		newHasher,
		newPhotoStore,
		newLocker,
	)
}

func injectHTTP() fx.Option {
	return fx.Provide(
		newRouterOptions,
		newServices,
		newHTTPServer,
	)
}
