package main

import (
	"context"
	"log/slog"
	"os"

	"performiq/config"
	"performiq/internal/delivery"
	"performiq/internal/delivery/http"
	"performiq/internal/delivery/http/middleware"
	"performiq/internal/delivery/http/router/handler"
	"performiq/internal/domain/service"
	"performiq/internal/infra/auth"
	"performiq/internal/infra/crypto"
	"performiq/internal/infra/httpclient"
	logs "performiq/internal/infra/log"
	"performiq/internal/infra/oauthstate"
	"performiq/internal/infra/persistence/postgres"
	"performiq/internal/infra/provider"
	"performiq/internal/infra/provider/gmail"
	"performiq/internal/infra/provider/msgraph"
	"performiq/internal/infra/provider/slack"
	"performiq/internal/infra/provider/zoom"
	"performiq/internal/infra/pubsub"
	"performiq/internal/infra/realtime"
	"performiq/internal/infra/scheduler"
	"performiq/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startScheduler,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			httpclient.New,
			newAvailability,
		),
		pubsub.Module,
		realtime.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIntegrationRepository,
			postgres.NewIntegrationAccountRepository,
			postgres.NewSyncStateRepository,
			postgres.NewEventRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			crypto.New,
			oauthstate.New,
			provider.NewRegistry,
			asProviderAdapter(slack.New),
			asProviderAdapter(gmail.New),
			asProviderAdapter(msgraph.NewOutlook),
			asProviderAdapter(msgraph.NewTeams),
			asProviderAdapter(zoom.New),
		),
	)
}

func asProviderAdapter(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.ResultTags(`group:"providerAdapters"`),
	)
}

// newAvailability records whether integrations can run. Both the vault and
// the database are optional at startup.
func newAvailability(vault service.TokenVault, db *gorm.DB) service.Availability {
	return service.Availability{
		EncryptionConfigured: vault != nil && vault.CanEncrypt(),
		DatabaseConfigured:   db != nil,
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIntegrationService,
			impl.NewSyncService,
			impl.NewEventService,
			scheduler.New,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIntegrationHandler,
			handler.NewOAuthHandler,
			handler.NewAdminHandler,
			handler.NewEventHandler,
			handler.NewWebSocketHandler,
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

// startScheduler forces construction so the scheduler's lifecycle hooks are registered.
func startScheduler(*scheduler.Scheduler) {}

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
