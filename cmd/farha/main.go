package main

import (
	"context"
	"log/slog"
	"os"

	"farha/config"
	"farha/internal/delivery"
	"farha/internal/delivery/http"
	httpmw "farha/internal/delivery/http/middleware"
	"farha/internal/delivery/http/router/handler"
	deliverymw "farha/internal/delivery/middleware"
	logs "farha/internal/infra/log"
	"farha/internal/infra/media"
	"farha/internal/infra/otp"
	"farha/internal/infra/persistence/postgres"
	"farha/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			migrateSchema,
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
		media.New,
		otp.NewGenerator,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBeautyRepository,
			postgres.NewServiceRepository,
			postgres.NewFavoriteRepository,
			postgres.NewOwnerRepository,
			postgres.NewOTPRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBeautyService,
			impl.NewCatalogService,
			impl.NewFavoriteService,
			impl.NewOwnerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymw.NewRequestIDMiddleware,
			deliverymw.NewLoggerMiddleware,
			httpmw.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBeautyHandler,
			handler.NewCatalogHandler,
			handler.NewFavoriteHandler,
			handler.NewOwnerHandler,
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

func migrateSchema(db *gorm.DB) error {
	return postgres.Migrate(db)
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
