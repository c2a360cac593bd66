// Package providertest wires provider adapters to a throwaway SQLite
// database and a fake provider API for tests.
package providertest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"performiq/config"
	"performiq/internal/domain/entity"
	"performiq/internal/domain/service"
	"performiq/internal/infra/crypto"
	"performiq/internal/infra/httpclient"
	"performiq/internal/infra/persistence/postgres"
	"performiq/internal/infra/provider/common"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Env is a ready-to-use adapter environment.
type Env struct {
	DB     *gorm.DB
	Server *httptest.Server
	Params common.Params
	Vault  service.TokenVault
	OrgID  uuid.UUID
}

// New starts handler as the fake provider API and opens a migrated SQLite database.
func New(t *testing.T, handler http.Handler) *Env {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "provider.db")
	cfg.ApplyDefaults()
	cfg.HTTPClient.MaxRetries = 0
	cfg.HTTPClient.Timeout = 5 * time.Second

	db, err := postgres.Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	key := make([]byte, crypto.KeySize)
	for i := range key {
		key[i] = byte(i + 1)
	}
	vault, err := crypto.NewVault(key)
	require.NoError(t, err)

	return &Env{
		DB:     db,
		Server: server,
		Vault:  vault,
		OrgID:  uuid.New(),
		Params: common.Params{
			Config:     cfg,
			Logger:     logger,
			HTTP:       httpclient.NewWithOptions(cfg.HTTPClient, server.Client(), logger),
			Vault:      vault,
			Accounts:   postgres.NewIntegrationAccountRepository(db),
			SyncStates: postgres.NewSyncStateRepository(db),
			TxManager:  postgres.NewTransactionManager(db),
		},
	}
}

// SeedAccount stores a connected account holding tokens and returns it.
func (e *Env) SeedAccount(t *testing.T, provider entity.Provider, externalID string, tokens *entity.TokenSet) *entity.IntegrationAccount {
	t.Helper()
	ctx := context.Background()

	integration, err := postgres.NewIntegrationRepository(e.DB).Upsert(ctx, &entity.Integration{
		OrgID:    e.OrgID,
		Provider: provider,
		Status:   entity.IntegrationStatusConnected,
	})
	require.NoError(t, err)

	blob, err := e.Vault.EncryptTokens(tokens)
	require.NoError(t, err)

	account, err := e.Params.Accounts.Upsert(ctx, &entity.IntegrationAccount{
		OrgID:               e.OrgID,
		IntegrationID:       integration.ID,
		Provider:            provider,
		ExternalAccountID:   externalID,
		TokenEncrypted:      blob,
		RefreshTokenPresent: tokens.HasRefreshToken(),
	})
	require.NoError(t, err)

	return account
}

// Count returns the number of rows in table.
func (e *Env) Count(t *testing.T, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, e.DB.Table(table).Count(&n).Error)

	return n
}

// SyncStates lists the org's sync states.
func (e *Env) SyncStates(t *testing.T) []*entity.SyncState {
	t.Helper()

	states, err := e.Params.SyncStates.ListByOrg(context.Background(), e.OrgID)
	require.NoError(t, err)

	return states
}

// Events lists the org's events, newest first.
func (e *Env) Events(t *testing.T) []*entity.NormalizedEvent {
	t.Helper()

	events, err := postgres.NewEventRepository(e.DB).List(context.Background(), entity.EventFilter{OrgID: e.OrgID, Limit: 1000})
	require.NoError(t, err)

	return events
}

