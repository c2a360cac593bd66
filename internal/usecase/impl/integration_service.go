package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "performiq/internal/delivery/context"
	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/repository"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
	"performiq/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type integrationService struct {
	txManager    repository.TransactionManager
	integrations repository.IntegrationRepository
	states       service.OAuthStateStore
	registry     service.ProviderRegistry
	vault        service.TokenVault
	availability service.Availability
	logger       *slog.Logger
	now          func() time.Time
}

// IntegrationServiceParams holds dependencies for IntegrationService, injected by Fx.
type IntegrationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Integrations repository.IntegrationRepository
	States       service.OAuthStateStore
	Registry     service.ProviderRegistry
	Vault        service.TokenVault
	Availability service.Availability
	Logger       *slog.Logger
}

// NewIntegrationService is the constructor for integrationService.
func NewIntegrationService(params IntegrationServiceParams) usecase.IntegrationUsecase {
	return &integrationService{
		txManager:    params.TxManager,
		integrations: params.Integrations,
		states:       params.States,
		registry:     params.Registry,
		vault:        params.Vault,
		availability: params.Availability,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (srv *integrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *integrationService) ListIntegrations(ctx context.Context, orgID uuid.UUID) (*usecase.IntegrationList, error) {
	out := &usecase.IntegrationList{
		Integrations: []*entity.Integration{},
		OAuthEnabled: srv.availability.OAuthEnabled(),
	}
	if !srv.availability.DatabaseConfigured {
		return out, nil
	}

	integrations, err := srv.integrations.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list integrations")
	}
	if integrations != nil {
		out.Integrations = integrations
	}

	return out, nil
}

func (srv *integrationService) ConnectURL(ctx context.Context, orgID uuid.UUID, provider entity.Provider) (string, error) {
	if err := srv.availability.Check(); err != nil {
		srv.log(ctx).Warn("OAuth connect attempted while unavailable", slog.String("provider", provider.String()))

		return "", err
	}

	adapter, err := srv.adapter(provider)
	if err != nil {
		return "", err
	}

	state, err := srv.states.Create(ctx, orgID, provider)
	if err != nil {
		return "", errors.Wrap(err, "failed to create oauth state")
	}

	url, err := adapter.ConnectURL(state)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("Generated OAuth connect URL", slog.String("provider", provider.String()), slog.String("orgID", orgID.String()))

	return url, nil
}

func (srv *integrationService) HandleCallback(ctx context.Context, input *usecase.CallbackInput) (*entity.IntegrationAccount, error) {
	if err := srv.availability.Check(); err != nil {
		srv.log(ctx).Error("OAuth callback received while unavailable", slog.String("provider", input.Provider.String()))

		return nil, err
	}

	adapter, err := srv.adapter(input.Provider)
	if err != nil {
		return nil, err
	}

	if input.Code == "" || input.State == "" {
		return nil, domainerrors.ErrInvalidCallback
	}

	state, err := srv.states.Validate(ctx, input.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate oauth state")
	}
	if state == nil {
		return nil, domainerrors.ErrOAuthStateInvalid
	}
	if state.Provider != input.Provider {
		return nil, domainerrors.ErrOAuthStateMismatch
	}

	logger := srv.log(ctx).With(slog.String("provider", input.Provider.String()), slog.String("orgID", state.OrgID.String()))
	logger.Info("Processing OAuth callback")

	result, err := adapter.ExchangeCode(ctx, input.Code)
	if err != nil {
		logger.Error("OAuth code exchange failed", slog.Any("error", err))

		var exchangeErr *domainerrors.OAuthExchangeError
		if errors.As(err, &exchangeErr) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrOAuthExchangeFailed.WithDetails(err.Error()), "exchange code")
	}

	blob, err := srv.vault.EncryptTokens(result.Tokens)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt tokens")
	}

	now := srv.now()
	account := &entity.IntegrationAccount{
		OrgID:               state.OrgID,
		Provider:            input.Provider,
		ExternalAccountID:   result.ExternalAccountID,
		TokenEncrypted:      blob,
		TokenExpiresAt:      result.Tokens.ExpiresAt(now),
		RefreshTokenPresent: result.Tokens.HasRefreshToken(),
	}
	if result.ExternalAccountEmail != "" {
		email := result.ExternalAccountEmail
		account.ExternalAccountEmail = &email
	}

	var stored *entity.IntegrationAccount
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		integration, err := repoFactory.NewIntegrationRepository().Upsert(ctx, &entity.Integration{
			OrgID:       state.OrgID,
			Provider:    input.Provider,
			Status:      entity.IntegrationStatusConnected,
			ConnectedAt: now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to upsert integration")
		}

		account.IntegrationID = integration.ID
		stored, err = repoFactory.NewIntegrationAccountRepository().Upsert(ctx, account)
		if err != nil {
			return errors.Wrap(err, "failed to upsert integration account")
		}

		return nil
	})
	if err != nil {
		logger.Error("Failed to store OAuth connection", slog.Any("error", err))

		return nil, err
	}

	logger.Info("OAuth connection stored",
		slog.String("accountID", stored.ID.String()),
		slog.String("externalAccountID", stored.ExternalAccountID),
	)

	return stored, nil
}

func (srv *integrationService) Disconnect(ctx context.Context, orgID uuid.UUID, provider entity.Provider) error {
	if !srv.availability.DatabaseConfigured {
		return domainerrors.ErrDatabaseNotConfigured
	}

	if err := srv.integrations.UpdateStatus(ctx, orgID, provider, entity.IntegrationStatusDisconnected); err != nil {
		if !errors.Is(err, repository.ErrIntegrationNotFound) {
			return errors.Wrap(err, "failed to disconnect integration")
		}
		// Disconnecting twice, or before ever connecting, is a no-op.
		srv.log(ctx).Debug("No integration to disconnect", slog.String("provider", provider.String()))

		return nil
	}

	srv.log(ctx).Info("Integration disconnected", slog.String("provider", provider.String()), slog.String("orgID", orgID.String()))

	return nil
}

func (srv *integrationService) adapter(provider entity.Provider) (service.ProviderAdapter, error) {
	adapter, ok := srv.registry.Adapter(provider)
	if !ok {
		return nil, domainerrors.ErrInvalidProvider
	}

	return adapter, nil
}
