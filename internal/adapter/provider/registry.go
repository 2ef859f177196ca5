package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
)

// Factory constrói um provedor a partir da configuração fiscal
type Factory func(settings fiscal.Settings) fiscal.Provider

// Registry resolve o provedor ativo a partir do código configurado.
// Códigos desconhecidos caem no provedor simulado.
type Registry struct {
	store     fiscal.ParameterStore
	logger    logger.Logger
	mu        sync.RWMutex
	factories map[fiscal.ProviderCode]Factory
}

// NewRegistry cria o registro com os três provedores embutidos
func NewRegistry(store fiscal.ParameterStore, log logger.Logger) *Registry {
	r := &Registry{
		store:     store,
		logger:    log,
		factories: make(map[fiscal.ProviderCode]Factory),
	}

	r.Register(fiscal.ProviderDummy, func(s fiscal.Settings) fiscal.Provider { return NewDummyProvider(s) })
	r.Register(fiscal.ProviderSefazNFe, func(s fiscal.Settings) fiscal.Provider { return NewSefazProvider(s) })
	r.Register(fiscal.ProviderNFSeBrasilia, func(s fiscal.Settings) fiscal.Provider { return NewNFSeProvider(s) })

	return r
}

// Register associa (ou substitui) a fábrica de um código de provedor
func (r *Registry) Register(code fiscal.ProviderCode, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[code] = factory
}

// Resolve lê a configuração atual e instancia o provedor correspondente
func (r *Registry) Resolve(ctx context.Context) (fiscal.Provider, error) {
	settings, err := fiscal.LoadSettings(ctx, r.store)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar configuração fiscal: %w", err)
	}

	r.mu.RLock()
	factory, ok := r.factories[settings.ProviderCode]
	if !ok {
		factory = r.factories[fiscal.ProviderDummy]
	}
	r.mu.RUnlock()

	if !ok {
		r.logger.Warn("Provedor fiscal desconhecido, usando provedor simulado",
			"provider_code", string(settings.ProviderCode))
	}

	return factory(settings), nil
}
