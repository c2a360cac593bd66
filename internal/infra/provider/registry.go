// Package provider assembles the per-provider adapters into a lookup table.
package provider

import (
	"performiq/internal/domain/entity"
	"performiq/internal/domain/service"

	"go.uber.org/fx"
)

// RegistryParams collects every adapter registered in the "providerAdapters" group.
type RegistryParams struct {
	fx.In

	Adapters []service.ProviderAdapter `group:"providerAdapters"`
}

type registry struct {
	adapters map[entity.Provider]service.ProviderAdapter
}

// NewRegistry indexes adapters by provider. A later adapter for the same provider wins.
func NewRegistry(params RegistryParams) service.ProviderRegistry {
	r := &registry{adapters: make(map[entity.Provider]service.ProviderAdapter, len(params.Adapters))}
	for _, adapter := range params.Adapters {
		if adapter == nil {
			continue
		}
		r.adapters[adapter.Provider()] = adapter
	}

	return r
}

func (r *registry) Adapter(provider entity.Provider) (service.ProviderAdapter, bool) {
	adapter, ok := r.adapters[provider]

	return adapter, ok
}

// Providers lists the registered providers in the canonical order.
func (r *registry) Providers() []entity.Provider {
	out := make([]entity.Provider, 0, len(r.adapters))
	for _, p := range entity.AllProviders() {
		if _, ok := r.adapters[p]; ok {
			out = append(out, p)
		}
	}

	return out
}
