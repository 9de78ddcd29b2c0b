package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"recruitcms/config"
	"recruitcms/internal/delivery"
	"recruitcms/internal/delivery/http"
	"recruitcms/internal/delivery/http/middleware"
	"recruitcms/internal/delivery/http/router/handler"
	"recruitcms/internal/infra/auth"
	logs "recruitcms/internal/infra/log"
	"recruitcms/internal/infra/persistence/postgres"
	"recruitcms/internal/infra/storage"
	"recruitcms/internal/infra/translit"
	"recruitcms/internal/usecase"
	"recruitcms/internal/usecase/impl"
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
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewNewsRepository,
			postgres.NewJobRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			translit.NewRomajiSlugger,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewNewsService,
			impl.NewJobService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewNewsHandler,
			handler.NewJobHandler,
			handler.NewUploadHandler,
			handler.NewStatusHandler,
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

// bootstrapAdmin seeds the initial admin account on startup. A failure is
// logged, not fatal: the service still serves logins for existing accounts.
func bootstrapAdmin(ctx context.Context, authUC usecase.AuthUsecase, logger *slog.Logger) {
	if err := authUC.BootstrapAdmin(ctx); err != nil {
		logger.Error("Failed to bootstrap admin account", slog.Any("error", err))
	}
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
