package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"performiq/config"
	deliverycontext "performiq/internal/delivery/context"
	"performiq/internal/domain/entity"
	"performiq/internal/domain/repository"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
	"performiq/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const unknownProviderMessage = "Unknown provider"

type syncService struct {
	accounts       repository.IntegrationAccountRepository
	syncStates     repository.SyncStateRepository
	registry       service.ProviderRegistry
	notifiers      []service.SyncNotifier
	availability   service.Availability
	locks          *accountLocks
	orgConcurrency int
	orgLimit       int
	logger         *slog.Logger
	now            func() time.Time
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	Accounts     repository.IntegrationAccountRepository
	SyncStates   repository.SyncStateRepository
	Registry     service.ProviderRegistry
	Notifiers    []service.SyncNotifier `group:"syncNotifiers"`
	Availability service.Availability
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	orgConcurrency, orgLimit := 1, 1000
	if params.Config != nil {
		orgConcurrency = max(params.Config.Sync.OrgConcurrency, 1)
		if params.Config.Sync.OrgLimit > 0 {
			orgLimit = params.Config.Sync.OrgLimit
		}
	}

	notifiers := make([]service.SyncNotifier, 0, len(params.Notifiers))
	for _, n := range params.Notifiers {
		if n != nil {
			notifiers = append(notifiers, n)
		}
	}

	return &syncService{
		accounts:       params.Accounts,
		syncStates:     params.SyncStates,
		registry:       params.Registry,
		notifiers:      notifiers,
		availability:   params.Availability,
		locks:          newAccountLocks(),
		orgConcurrency: orgConcurrency,
		orgLimit:       orgLimit,
		logger:         params.Logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *syncService) RunSyncForOrg(ctx context.Context, orgID uuid.UUID) (usecase.SyncResults, error) {
	if err := srv.availability.Check(); err != nil {
		return nil, err
	}

	ctx, logger := deliverycontext.WithOrg(ctx, srv.logger, orgID)

	accounts, err := srv.accounts.ListByOrg(ctx, orgID)
	if err != nil {
		logger.Error("Failed to fetch integration accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list integration accounts")
	}

	results := usecase.SyncResults{}
	if len(accounts) == 0 {
		logger.Info("No integration accounts found for org")

		return results, nil
	}

	for _, account := range accounts {
		logger.Info("Running sync for provider", slog.String("provider", account.Provider.String()))

		result := srv.syncAccount(ctx, account)
		if existing, ok := results[account.Provider]; ok {
			existing.Merge(result)
		} else {
			results[account.Provider] = result
		}
	}

	srv.notify(ctx, orgID, results)

	return results, nil
}

func (srv *syncService) RunSyncForAllOrgs(ctx context.Context) error {
	if err := srv.availability.Check(); err != nil {
		return err
	}

	orgIDs, err := srv.accounts.ListOrgIDs(ctx, srv.orgLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch integration accounts for scheduled sync", slog.Any("error", err))

		return errors.Wrap(err, "failed to list org ids")
	}

	srv.log(ctx).Info("Running scheduled sync for all orgs", slog.Int("orgCount", len(orgIDs)))

	var (
		mu       sync.Mutex
		failures error
		group    errgroup.Group
	)
	group.SetLimit(srv.orgConcurrency)

	for _, orgID := range orgIDs {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			if _, err := srv.RunSyncForOrg(ctx, orgID); err != nil {
				srv.log(ctx).Error("Scheduled sync failed for org", slog.String("orgID", orgID.String()), slog.Any("error", err))

				mu.Lock()
				failures = errors.Append(failures, errors.Wrapf(err, "org %s", orgID))
				mu.Unlock()
			}

			return nil
		})
	}

	_ = group.Wait()

	if ctx.Err() != nil {
		return errors.Append(failures, errors.WithStack(ctx.Err()))
	}

	return failures
}

func (srv *syncService) GetSyncStatus(ctx context.Context, orgID uuid.UUID) ([]*entity.SyncState, error) {
	if !srv.availability.DatabaseConfigured {
		return []*entity.SyncState{}, nil
	}

	states, err := srv.syncStates.ListByOrg(ctx, orgID)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch sync states", slog.String("orgID", orgID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list sync states")
	}
	if states == nil {
		states = []*entity.SyncState{}
	}

	return states, nil
}

// syncAccount never returns nil. Adapter errors and panics become a failed
// result and a failed SyncState row.
func (srv *syncService) syncAccount(ctx context.Context, account *entity.IntegrationAccount) (result *entity.SyncResult) {
	ctx, logger := deliverycontext.WithAccount(ctx, srv.logger, account.Provider.String(), account.ID)

	adapter, ok := srv.registry.Adapter(account.Provider)
	if !ok {
		logger.Error("No adapter registered for provider")
		srv.recordFailure(ctx, account, unknownProviderMessage)

		return entity.FailedResult(unknownProviderMessage)
	}

	release, err := srv.locks.acquire(ctx, account.ID)
	if err != nil {
		logger.Warn("Sync cancelled while waiting for account lock", slog.Any("error", err))
		srv.recordFailure(context.WithoutCancel(ctx), account, err.Error())

		return entity.FailedResult(err.Error())
	}
	defer release()

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("panic: %v", r)
			logger.Error("Sync panicked", slog.String("panic", msg))
			srv.recordFailure(ctx, account, msg)
			result = entity.FailedResult(msg)
		}
	}()

	result, err = adapter.Sync(ctx, account.OrgID, account.ID, account.TokenEncrypted)
	if err != nil {
		logger.Error("Sync failed", slog.Any("error", err))
		srv.recordFailure(ctx, account, err.Error())

		return entity.FailedResult(err.Error())
	}
	if result == nil {
		const msg = "provider returned no result"
		srv.recordFailure(ctx, account, msg)

		return entity.FailedResult(msg)
	}

	logger.Info("Sync finished",
		slog.String("status", string(result.Status)),
		slog.Int("eventsProcessed", result.EventsProcessed),
	)

	return result
}

func (srv *syncService) recordFailure(ctx context.Context, account *entity.IntegrationAccount, msg string) {
	state := &entity.SyncState{
		OrgID:                account.OrgID,
		Provider:             account.Provider,
		IntegrationAccountID: account.ID,
		LastSyncedAt:         srv.now(),
		LastError:            &msg,
	}
	if err := srv.syncStates.Upsert(ctx, state); err != nil {
		srv.log(ctx).Error("Failed to record sync failure", slog.Any("error", err))
	}
}

func (srv *syncService) notify(ctx context.Context, orgID uuid.UUID, results usecase.SyncResults) {
	if len(srv.notifiers) == 0 {
		return
	}

	event := &service.SyncEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        service.SyncEventCompleted,
		OrgID:       orgID,
		Results:     results,
		CompletedAt: srv.now(),
	}
	for _, notifier := range srv.notifiers {
		if err := notifier.NotifySync(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to deliver sync notification", slog.Any("error", err))
		}
	}
}

// accountLocks serializes syncs of the same account across the manual
// trigger and the scheduler.
type accountLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*semaphore.Weighted
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[uuid.UUID]*semaphore.Weighted)}
}

func (l *accountLocks) acquire(ctx context.Context, accountID uuid.UUID) (func(), error) {
	l.mu.Lock()
	sem, ok := l.locks[accountID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		l.locks[accountID] = sem
	}
	l.mu.Unlock()

	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, errors.WithStack(err)
	}

	return func() { sem.Release(1) }, nil
}
