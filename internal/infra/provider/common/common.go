// Package common holds the plumbing every provider adapter shares: the
// dependency bundle, sync-state bookkeeping and transactional ingestion.
package common

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"performiq/config"
	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/repository"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
	"performiq/internal/infra/httpclient"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Params are the dependencies of a provider adapter.
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTP       *httpclient.Client
	Vault      service.TokenVault
	Accounts   repository.IntegrationAccountRepository
	SyncStates repository.SyncStateRepository
	TxManager  repository.TransactionManager
}

// RedirectURI returns the configured callback or the conventional
// {baseURL}/oauth/{provider}/callback.
func RedirectURI(cfg *config.Config, creds config.ProviderCredentials, provider entity.Provider) string {
	if creds.RedirectURI != "" {
		return creds.RedirectURI
	}

	return fmt.Sprintf("%s/oauth/%s/callback", cfg.App.BaseURL, provider)
}

// RequireCredentials fails with ErrProviderNotConfigured when the OAuth app is incomplete.
func RequireCredentials(creds config.ProviderCredentials, needSecret bool) error {
	if creds.ClientID == "" || (needSecret && creds.ClientSecret == "") {
		return domainerrors.ErrProviderNotConfigured
	}

	return nil
}

// ExchangeError turns a transport or status failure into an OAuthExchangeError.
func ExchangeError(provider entity.Provider, err error) error {
	var statusErr *domainerrors.HTTPStatusError
	if errors.As(err, &statusErr) {
		return &domainerrors.OAuthExchangeError{
			Provider: provider.String(),
			Status:   statusErr.StatusCode,
			Reason:   statusErr.Body,
		}
	}

	return &domainerrors.OAuthExchangeError{Provider: provider.String(), Reason: err.Error()}
}

// DecryptAccessToken opens the stored token blob and insists on an access token.
func DecryptAccessToken(vault service.TokenVault, provider entity.Provider, tokenEncrypted string) (*entity.TokenSet, error) {
	tokens, err := vault.DecryptTokens(tokenEncrypted)
	if err != nil {
		return nil, &domainerrors.SyncProviderError{Provider: provider.String(), Op: "decrypt tokens", Err: err}
	}
	if tokens.AccessToken == "" {
		return nil, &domainerrors.SyncProviderError{Provider: provider.String(), Op: "decrypt tokens", Err: errors.New("no access token found")}
	}

	return tokens, nil
}

// BearerHeaders returns the Authorization header for an access token.
func BearerHeaders(accessToken string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + accessToken}
}

// Item is one provider record ready for storage.
type Item struct {
	Raw   *entity.RawEvent
	Event *entity.NormalizedEvent
}

// Ingest writes the raw and normalized rows of one item in a single
// transaction. Both upserts are keyed on (org, provider, external id).
func Ingest(ctx context.Context, txManager repository.TransactionManager, item Item) error {
	return txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		events := factory.NewEventRepository()
		if err := events.UpsertRaw(ctx, item.Raw); err != nil {
			return errors.Wrap(err, "upsert raw event")
		}

		return errors.Wrap(events.UpsertNormalized(ctx, item.Event), "upsert event")
	})
}

// SyncStateRecorder writes the per-account outcome of a sync attempt.
type SyncStateRecorder struct {
	States repository.SyncStateRepository
	Logger *slog.Logger
	Now    func() time.Time
}

func (r *SyncStateRecorder) now() time.Time {
	if r.Now != nil {
		return r.Now().UTC()
	}

	return time.Now().UTC()
}

// Success stamps lastSuccessAt and clears lastError.
func (r *SyncStateRecorder) Success(ctx context.Context, orgID uuid.UUID, provider entity.Provider, accountID uuid.UUID) {
	now := r.now()
	r.write(ctx, &entity.SyncState{
		OrgID:                orgID,
		Provider:             provider,
		IntegrationAccountID: accountID,
		LastSyncedAt:         now,
		LastSuccessAt:        &now,
	})
}

// Failure stores msg as lastError and leaves lastSuccessAt alone.
func (r *SyncStateRecorder) Failure(ctx context.Context, orgID uuid.UUID, provider entity.Provider, accountID uuid.UUID, msg string) {
	r.write(ctx, &entity.SyncState{
		OrgID:                orgID,
		Provider:             provider,
		IntegrationAccountID: accountID,
		LastSyncedAt:         r.now(),
		LastError:            &msg,
	})
}

// write never fails the sync; errors are logged.
func (r *SyncStateRecorder) write(ctx context.Context, state *entity.SyncState) {
	if err := r.States.Upsert(ctx, state); err != nil {
		r.Logger.ErrorContext(ctx, "Failed to record sync state",
			slog.String("provider", state.Provider.String()),
			slog.String("orgID", state.OrgID.String()),
			slog.String("accountID", state.IntegrationAccountID.String()),
			slog.Any("error", err),
		)
	}
}

// NotImplementedSync is the shared body of providers whose ingestion is not built yet.
func NotImplementedSync(ctx context.Context, recorder *SyncStateRecorder, orgID uuid.UUID, provider entity.Provider, accountID uuid.UUID) *entity.SyncResult {
	recorder.Logger.InfoContext(ctx, "Provider sync not implemented",
		slog.String("provider", provider.String()),
		slog.String("orgID", orgID.String()),
		slog.String("accountID", accountID.String()),
	)
	recorder.Failure(ctx, orgID, provider, accountID, entity.NotImplementedMessage)

	return entity.NotImplementedResult()
}

// Finish records the outcome of a sync and builds its result.
func Finish(ctx context.Context, recorder *SyncStateRecorder, orgID uuid.UUID, provider entity.Provider, accountID uuid.UUID, processed int, err error) *entity.SyncResult {
	attrs := []any{
		slog.String("provider", provider.String()),
		slog.String("orgID", orgID.String()),
		slog.Int("eventsProcessed", processed),
	}

	if err != nil {
		recorder.Logger.ErrorContext(ctx, "Provider sync failed", append(attrs, slog.Any("error", err))...)
		recorder.Failure(ctx, orgID, provider, accountID, err.Error())

		result := entity.FailedResult(err.Error())
		result.EventsProcessed = processed

		return result
	}

	recorder.Logger.InfoContext(ctx, "Provider sync completed", attrs...)
	recorder.Success(ctx, orgID, provider, accountID)

	return entity.SucceededResult(processed)
}
