// Package resolver binds the session's human participant from room
// metadata, exactly once.
package resolver

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"kai-agent/contract"
	"kai-agent/domain"
)

var validate = validator.New()

// participantMetadata mirrors the JSON the backend attaches to the remote
// participant when creating the room token.
type participantMetadata struct {
	ID             int     `json:"id" validate:"required,gt=0"`
	Name           *string `json:"name"`
	CEFRLevel      *string `json:"cefr_level"`
	NativeLanguage *string `json:"native_language"`
}

// Resolver performs single-assignment participant resolution. A failed
// attempt is silent and retryable; a successful one is final.
type Resolver struct {
	mu    sync.Mutex
	bound *domain.Participant
	log   *slog.Logger
}

func New(log *slog.Logger) *Resolver {
	return &Resolver{log: log}
}

// Participant returns the bound participant, or nil while unresolved.
func (r *Resolver) Participant() *domain.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bound
}

// Resolve picks the first candidate and parses its metadata. It returns
// the bound participant and whether this call performed the binding.
// Already bound: returns the existing participant unchanged. No usable
// candidate: returns nil and may be retried later.
func (r *Resolver) Resolve(candidates []contract.RemoteParticipant) (*domain.Participant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bound != nil {
		return r.bound, false
	}
	if len(candidates) == 0 {
		return nil, false
	}

	candidate := candidates[0]
	p, err := parseMetadata(candidate.Metadata())
	if err != nil {
		r.log.Debug("Participant metadata not usable yet", "identity", candidate.Identity(), "error", err)
		return nil, false
	}

	r.bound = p
	r.log.Info("Participant resolved", "id", p.ID, "cefr_level", string(p.CEFRLevel))
	return r.bound, true
}

func parseMetadata(raw string) (*domain.Participant, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty metadata")
	}
	var meta participantMetadata
	if err := sonic.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	if err := validate.Struct(meta); err != nil {
		return nil, fmt.Errorf("validate metadata: %w", err)
	}

	p := &domain.Participant{ID: meta.ID}
	if meta.Name != nil {
		p.Name = *meta.Name
	}
	if meta.CEFRLevel != nil {
		p.CEFRLevel = domain.ParseCEFRLevel(*meta.CEFRLevel)
	}
	if meta.NativeLanguage != nil {
		p.NativeLanguage = *meta.NativeLanguage
	}
	return p, nil
}
