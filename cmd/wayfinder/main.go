package main

import (
	"context"
	"log/slog"
	"os"

	"wayfinder/config"
	"wayfinder/internal/delivery"
	"wayfinder/internal/delivery/http"
	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/router/handler"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/auth"
	"wayfinder/internal/infra/geocode"
	"wayfinder/internal/infra/geoloc"
	logs "wayfinder/internal/infra/log"
	"wayfinder/internal/infra/persistence/postgres"
	"wayfinder/internal/infra/pubsub"
	"wayfinder/internal/infra/qrcode"
	"wayfinder/internal/infra/routing/directions"
	"wayfinder/internal/usecase"
	"wayfinder/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPoiRepository,
			postgres.NewTripRepository,
			postgres.NewAccessLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			geoloc.NewTracker,
			asLocationSource,
			asLocationReporter,
			directions.NewClient,
			geocode.NewClient,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// asLocationSource exposes the tracker through its source port
func asLocationSource(tracker *geoloc.Tracker) service.LocationSource {
	return tracker
}

// asLocationReporter exposes the tracker through its reporter port
func asLocationReporter(tracker *geoloc.Tracker) service.LocationReporter {
	return tracker
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newAccessLogService creates the access event queue and drains it on
// shutdown so buffered events are not lost.
func newAccessLogService(
	lc fx.Lifecycle,
	repo repository.AccessLogRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.AccessLogUsecase {
	queueSize := 0
	if cfg.AccessLog != nil {
		queueSize = cfg.AccessLog.QueueSize
	}

	svc := impl.NewAccessLogService(repo, publisher, logger, queueSize)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return svc.Close()
		},
	})

	return svc
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newAccessLogService,
			impl.NewPoiService,
			impl.NewRouteService,
			impl.NewMapViewService,
			impl.NewNavigationService,
			impl.NewTripService,
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
			handler.NewPoiHandler,
			handler.NewRouteHandler,
			handler.NewNavigationHandler,
			handler.NewMapHandler,
			handler.NewTripHandler,
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
