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
	beyDefaultBaseURL  = "https://api.bey.dev/v1"
	beyDefaultIdentity = "bey-avatar-agent"
)

// BeyondPresence drives a Beyond Presence rendered avatar. The vendor
// hosts the renderer; we only create a session that joins the room as its
// own participant. There is no remote teardown call.
type BeyondPresence struct {
	cfg     Config
	apiKey  string
	baseURL string
	http    *http.Client
	log     *slog.Logger

	mu        sync.Mutex
	sessionID string
	active    bool
}

func NewBeyondPresence(cfg Config, deps Deps) *BeyondPresence {
	client := deps.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &BeyondPresence{
		cfg:     cfg,
		apiKey:  deps.BeyAPIKey,
		baseURL: beyDefaultBaseURL,
		http:    client,
		log:     deps.Log,
	}
}

// SetBaseURL overrides the vendor endpoint, for tests.
func (p *BeyondPresence) SetBaseURL(url string) { p.baseURL = url }

func (p *BeyondPresence) CreateSession(ctx context.Context) error {
	if p.cfg.BeyAvatarID == "" {
		return fmt.Errorf("beyond presence avatar requires an avatar id")
	}
	if p.apiKey == "" {
		return fmt.Errorf("beyond presence avatar requires an api key")
	}
	return nil
}

type beySessionRequest struct {
	AvatarID            string `json:"avatar_id"`
	ServerURL           string `json:"livekit_url"`
	RoomName            string `json:"room_name"`
	ParticipantIdentity string `json:"avatar_participant_identity"`
	ParticipantName     string `json:"avatar_participant_name"`
}

type beySessionResponse struct {
	ID string `json:"id"`
}

func (p *BeyondPresence) Start(ctx context.Context, serverURL string, room contract.Room) error {
	identity := p.cfg.ParticipantIdentity
	if identity == "" {
		identity = beyDefaultIdentity
	}
	name := p.cfg.ParticipantName
	if name == "" {
		name = beyDefaultIdentity
	}

	body, err := sonic.Marshal(beySessionRequest{
		AvatarID:            p.cfg.BeyAvatarID,
		ServerURL:           serverURL,
		RoomName:            room.Name(),
		ParticipantIdentity: identity,
		ParticipantName:     name,
	})
	if err != nil {
		return fmt.Errorf("bey: marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/session", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("bey: build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("bey: create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("bey: create session returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("bey: read session response: %w", err)
	}
	var session beySessionResponse
	if err := sonic.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("bey: parse session response: %w", err)
	}

	p.mu.Lock()
	p.sessionID = session.ID
	p.active = true
	p.mu.Unlock()

	p.log.Info("Beyond Presence avatar started", "session_id", session.ID, "room", room.Name())
	return nil
}

func (p *BeyondPresence) Stop(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	// The vendor ends the session when the avatar participant leaves the
	// room; only local state is cleared here.
	p.sessionID = ""
	p.active = false
	return nil
}

func (p *BeyondPresence) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}
