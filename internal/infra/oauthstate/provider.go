package oauthstate

import (
	"context"
	"log/slog"
	"time"

	"performiq/config"
	"performiq/internal/domain/constants"
	"performiq/internal/domain/lifecycle"
	"performiq/internal/domain/service"
	"performiq/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the state store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New selects the configured backend and ties its background work to the app lifecycle.
func New(params Params) (service.OAuthStateStore, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.OAuth.StateStore {
	case constants.StateStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := NewRedisStore(client, cfg.Redis.KeyPrefix, cfg.OAuth.StateTTL, logger)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				return errors.WithStack(client.Close())
			},
		})
		logger.Info("Using redis OAuth state store", slog.String("addr", cfg.Redis.Addr))

		return store, nil

	case constants.StateStoreMemory, "":
		store := NewMemoryStore(cfg.OAuth.StateTTL, logger)
		sweepCtx, cancel := context.WithCancel(context.Background())

		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go RunSweeper(sweepCtx, store, cfg.OAuth.StateSweepInterval, logger)

				return nil
			},
			OnStop: func(context.Context) error {
				cancel()

				return nil
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown oauth state store: %s", cfg.OAuth.StateStore)
	}
}

// RunSweeper purges expired states every interval until ctx is cancelled.
func RunSweeper(ctx context.Context, store service.OAuthStateStore, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(ctx); removed > 0 {
				logger.Debug("Swept expired OAuth states", slog.Int("removed", removed))
			}
		}
	}
}
