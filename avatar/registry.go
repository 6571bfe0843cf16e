package avatar

import (
	"log/slog"
	"net/http"
	"sync"

	"kai-agent/contract"
)

// Deps bundles what provider constructors need beyond their own config.
type Deps struct {
	Log        *slog.Logger
	HTTPClient *http.Client
	BeyAPIKey  string
	AnamAPIKey string
}

// Factory builds a provider instance for one avatar config.
type Factory func(cfg Config, deps Deps) contract.AvatarProvider

// Registry maps provider tags to constructors. Tags without a registered
// factory resolve to "unsupported": the manager logs it and the session
// runs without an avatar instead of hitting a missing branch.
type Registry struct {
	mu        sync.RWMutex
	factories map[ProviderType]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[ProviderType]Factory)}
}

func (r *Registry) Register(t ProviderType, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[t] = f
}

// New instantiates a provider for the config, reporting false when the
// provider tag has no registered implementation.
func (r *Registry) New(cfg Config, deps Deps) (contract.AvatarProvider, bool) {
	r.mu.RLock()
	factory, ok := r.factories[cfg.Provider]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(cfg, deps), true
}

// DefaultRegistry registers every provider this build ships an
// implementation for. Hedra, Simli and Tavus are recognised in
// configuration but have no backend yet.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ProviderBeyondPresence, func(cfg Config, deps Deps) contract.AvatarProvider {
		return NewBeyondPresence(cfg, deps)
	})
	r.Register(ProviderAnam, func(cfg Config, deps Deps) contract.AvatarProvider {
		return NewAnam(cfg, deps)
	})
	r.Register(ProviderBitHuman, func(cfg Config, deps Deps) contract.AvatarProvider {
		return NewBitHuman(cfg, deps)
	})
	return r
}
