package provider

import (
	"context"
	"testing"

	"performiq/internal/domain/entity"
	"performiq/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAdapter struct {
	provider entity.Provider
}

func (s stubAdapter) Provider() entity.Provider { return s.provider }

func (s stubAdapter) ConnectURL(string) (string, error) { return "", nil }

func (s stubAdapter) ExchangeCode(context.Context, string) (*service.ExchangeResult, error) {
	return nil, nil
}

func (s stubAdapter) Sync(context.Context, uuid.UUID, uuid.UUID, string) (*entity.SyncResult, error) {
	return entity.SucceededResult(0), nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(RegistryParams{Adapters: []service.ProviderAdapter{
		stubAdapter{provider: entity.ProviderZoom},
		stubAdapter{provider: entity.ProviderSlack},
		nil,
	}})

	adapter, ok := r.Adapter(entity.ProviderSlack)
	assert.True(t, ok)
	assert.Equal(t, entity.ProviderSlack, adapter.Provider())

	_, ok = r.Adapter(entity.ProviderGmail)
	assert.False(t, ok)

	assert.Equal(t, []entity.Provider{entity.ProviderSlack, entity.ProviderZoom}, r.Providers())
}
