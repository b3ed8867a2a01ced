package main

import (
	"context"
	"log/slog"
	"os"

	"farmhub/config"
	"farmhub/internal/delivery"
	"farmhub/internal/delivery/http"
	"farmhub/internal/delivery/http/middleware"
	"farmhub/internal/delivery/http/router/handler"
	"farmhub/internal/infra/auth"
	"farmhub/internal/infra/backend"
	logs "farmhub/internal/infra/log"
	"farmhub/internal/infra/notification"
	"farmhub/internal/infra/persistence/memory"
	"farmhub/internal/infra/theme"
	"farmhub/internal/usecase"
	"farmhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewProductRepository,
			memory.NewCropRepository,
			memory.NewDiseaseRepository,
			memory.NewMarkerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTMarkerService,
			backend.NewSimulatedBackend,
			notification.NewToastNotifier,
			theme.NewSchemeSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewThemeService,
			impl.NewCartService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewProfileHandler,
			handler.NewThemeHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// restoreSession resolves any persisted session marker before the server
// starts accepting requests.
func restoreSession(ctx context.Context, session usecase.SessionUsecase) {
	session.Restore(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
