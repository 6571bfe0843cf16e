package avatar

import (
	"context"
	"log/slog"
	"sync"

	"kai-agent/contract"
)

// Manager runs at most one avatar provider for a session.
//
// Start never returns an error: configuration problems, unsupported
// providers, and vendor failures are all logged and leave the session
// with zero active avatars. Callers inspect Active afterwards to decide
// whether to log a warning.
type Manager struct {
	cfg      *Config
	registry *Registry
	deps     Deps
	log      *slog.Logger

	mu     sync.Mutex
	active contract.AvatarProvider
}

func NewManager(cfg *Config, registry *Registry, deps Deps, log *slog.Logger) *Manager {
	return &Manager{cfg: cfg, registry: registry, deps: deps, log: log}
}

// Start attempts to activate the configured provider for the room.
func (m *Manager) Start(ctx context.Context, serverURL string, room contract.Room) {
	if m.cfg == nil {
		m.log.Info("No avatar configured, continuing without avatar")
		return
	}
	if !m.cfg.Enabled {
		m.log.Info("Avatar is disabled, skipping avatar start")
		return
	}

	provider, ok := m.registry.New(*m.cfg, m.deps)
	if !ok {
		m.log.Warn("Avatar provider has no registered implementation, continuing without avatar",
			"provider", string(m.cfg.Provider))
		return
	}

	if err := provider.CreateSession(ctx); err != nil {
		m.log.Error("Avatar session creation failed, continuing without avatar",
			"provider", string(m.cfg.Provider), "error", err)
		return
	}
	if err := provider.Start(ctx, serverURL, room); err != nil {
		m.log.Error("Avatar start failed, continuing without avatar",
			"provider", string(m.cfg.Provider), "error", err)
		return
	}

	m.mu.Lock()
	m.active = provider
	m.mu.Unlock()
	m.log.Info("Avatar started", "provider", string(m.cfg.Provider))
}

// Stop tears down the active provider, if any.
func (m *Manager) Stop(ctx context.Context) {
	m.mu.Lock()
	provider := m.active
	m.active = nil
	m.mu.Unlock()

	if provider == nil {
		return
	}
	if err := provider.Stop(ctx); err != nil {
		m.log.Error("Avatar stop failed", "error", err)
	}
}

// Active reports whether a provider was successfully started and not yet
// stopped.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active != nil && m.active.Active()
}
