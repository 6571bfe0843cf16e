package avatar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/bytedance/sonic"

	"kai-agent/contract"
)

const (
	anamDefaultBaseURL = "https://api.anam.ai/v1"
	anamDefaultName    = "anam-avatar-agent"
)

// Anam drives an Anam persona avatar. The persona requires both an avatar
// id and a display name; there is no remote teardown call.
type Anam struct {
	cfg     Config
	apiKey  string
	baseURL string
	http    *http.Client
	log     *slog.Logger

	mu     sync.Mutex
	active bool
}

func NewAnam(cfg Config, deps Deps) *Anam {
	client := deps.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Anam{
		cfg:     cfg,
		apiKey:  deps.AnamAPIKey,
		baseURL: anamDefaultBaseURL,
		http:    client,
		log:     deps.Log,
	}
}

// SetBaseURL overrides the vendor endpoint, for tests.
func (p *Anam) SetBaseURL(url string) { p.baseURL = url }

func (p *Anam) CreateSession(ctx context.Context) error {
	if p.cfg.AnamAvatarID == "" || p.cfg.AnamName == "" {
		return fmt.Errorf("anam avatar requires both an avatar id and a name")
	}
	if p.apiKey == "" {
		return fmt.Errorf("anam avatar requires an api key")
	}
	return nil
}

type anamSessionRequest struct {
	Persona         anamPersona `json:"persona_config"`
	ServerURL       string      `json:"livekit_url"`
	RoomName        string      `json:"room_name"`
	ParticipantName string      `json:"avatar_participant_name"`
}

type anamPersona struct {
	Name     string `json:"name"`
	AvatarID string `json:"avatar_id"`
}

func (p *Anam) Start(ctx context.Context, serverURL string, room contract.Room) error {
	name := p.cfg.ParticipantName
	if name == "" {
		name = anamDefaultName
	}

	body, err := sonic.Marshal(anamSessionRequest{
		Persona:         anamPersona{Name: p.cfg.AnamName, AvatarID: p.cfg.AnamAvatarID},
		ServerURL:       serverURL,
		RoomName:        room.Name(),
		ParticipantName: name,
	})
	if err != nil {
		return fmt.Errorf("anam: marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/sessions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("anam: build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("anam: create session: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("anam: create session returned %s", resp.Status)
	}

	p.mu.Lock()
	p.active = true
	p.mu.Unlock()

	p.log.Info("Anam avatar started", "persona", p.cfg.AnamName, "room", room.Name())
	return nil
}

func (p *Anam) Stop(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = false
	return nil
}

func (p *Anam) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}
