// Package scheduler runs the periodic sync of every org on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"performiq/config"
	deliverycontext "performiq/internal/delivery/context"
	"performiq/internal/domain/lifecycle"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
	"performiq/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the scheduler, injected by Fx
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	Sync         usecase.SyncUsecase
	Availability service.Availability
	Logger       *slog.Logger
}

// Scheduler triggers RunSyncForAllOrgs and skips a tick while the previous
// sweep is still running.
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	sync    usecase.SyncUsecase
	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// New creates the scheduler and binds it to the fx lifecycle. The cron spec is
// only parsed when the scheduler is enabled, and the job only starts when both
// encryption and the database are configured.
func New(params Params) (*Scheduler, error) {
	s := newScheduler(params.Sync, params.Logger)

	if !params.Config.Scheduler.Enabled {
		params.Logger.Info("Job scheduler disabled")

		return s, nil
	}
	if err := s.schedule(params.Config.Scheduler.Spec); err != nil {
		return nil, err
	}
	if !params.Availability.OAuthEnabled() {
		params.Logger.Warn("Job scheduler not started: encryption or database not configured")

		return s, nil
	}

	params.Lc.Append(fx.Hook{
		OnStart: s.start,
		OnStop:  s.stop,
	})

	return s, nil
}

func newScheduler(syncUsecase usecase.SyncUsecase, logger *slog.Logger) *Scheduler {
	cronLogger := &slogCronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		sync:   syncUsecase,
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// schedule registers the sweep under spec.
func (s *Scheduler) schedule(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(s.ctx) }); err != nil {
		return errors.Wrapf(err, "invalid scheduler spec %q", spec)
	}
	s.spec = spec

	return nil
}

// RunOnce runs one sweep unless another is in flight. It reports whether the
// sweep ran.
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Info("Sync job already running, skipping")

		return false
	}
	defer s.running.Store(false)

	jobID := uuid.NewString()
	ctx, logger := deliverycontext.WithRequestScope(ctx, s.logger, jobID)

	start := time.Now()
	logger.Info("Starting scheduled sync job")

	if err := s.sync.RunSyncForAllOrgs(ctx); err != nil {
		logger.Error("Scheduled sync job failed",
			slog.Int("failures", len(errors.Errors(err))),
			slog.Any("error", err),
		)

		return true
	}

	logger.Info("Scheduled sync job completed", slog.Duration("duration", time.Since(start)))

	return true
}

// Running reports whether a sweep is in flight.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) start(context.Context) error {
	s.cron.Start()
	s.logger.Info("Job runner started", slog.String("spec", s.spec))

	return nil
}

// stop cancels the in-flight sweep and waits for it, bounded by the shared
// lifecycle timeout.
func (s *Scheduler) stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done.Done():
		s.logger.Info("Job scheduler stopped")

		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "scheduler did not stop in time")
	}
}

// slogCronLogger adapts slog to cron.Logger. Cron's chatty info output goes to debug.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
