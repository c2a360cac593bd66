package realtime

import (
	"context"
	"log/slog"

	"performiq/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the hub, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// New creates the hub and disconnects its clients on shutdown.
func New(params Params) *Hub {
	hub := NewHub(params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return hub.Close()
		},
	})

	return hub
}

// AsSyncNotifier exposes the hub to the sync engine's notifier group.
func AsSyncNotifier(hub *Hub) service.SyncNotifier {
	return hub
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		fx.Annotate(AsSyncNotifier, fx.ResultTags(`group:"syncNotifiers"`)),
	),
)
