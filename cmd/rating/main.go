package main

import (
	"context"
	"log/slog"
	"os"

	"rating/config"
	"rating/internal/delivery"
	"rating/internal/delivery/api"
	"rating/internal/delivery/api/router/handler"
	deliveryevent "rating/internal/delivery/event"
	"rating/internal/domain/repository"
	"rating/internal/domain/service"
	"rating/internal/infra/eventbus"
	logs "rating/internal/infra/log"
	"rating/internal/infra/metrics"
	"rating/internal/infra/persistence/memory"
	"rating/internal/infra/persistence/postgres"
	"rating/internal/infra/pubsub"
	"rating/internal/infra/qrcode"
	"rating/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize    = 256
	defaultQRCodeLevel   = "M"
	defaultQRCodeBaseURL = "http://localhost:3000"
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
		injectEvents(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewCollector,
	)
}

type repoParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector
}

type repoResult struct {
	fx.Out

	Buildings repository.BuildingRepository
	Comments  repository.CommentRepository
	Summaries repository.SummaryRepository
}

// newRepositories selects the storage driver. The memory driver keeps
// everything in-process and is meant for local runs.
func newRepositories(params repoParams) (repoResult, error) {
	if params.Config.Database.Driver == config.DriverMemory {
		params.Logger.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()

		return repoResult{
			Buildings: memory.NewBuildingRepository(store),
			Comments:  memory.NewCommentRepository(store),
			Summaries: memory.NewSummaryRepository(store),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
		Metrics:   params.Metrics,
	})
	if err != nil {
		return repoResult{}, err
	}

	return repoResult{
		Buildings: postgres.NewBuildingRepository(db),
		Comments:  postgres.NewCommentRepository(db),
		Summaries: postgres.NewSummaryRepository(db),
	}, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel, defaultQRCodeBaseURL)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBuildingService,
			impl.NewCommentService,
			impl.NewSummaryService,
		),
	)
}

func injectEvents() fx.Option {
	return fx.Options(
		eventbus.Module,
		deliveryevent.Module,
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBuildingHandler,
			handler.NewCommentHandler,
			handler.NewSummaryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
