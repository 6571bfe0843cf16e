// Package openai implements the turn engine over the OpenAI realtime
// WebSocket API. The engine owns the socket; audio routing between the
// room and the model is handled by the media bridge and is not modelled
// here.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"kai-agent/errors"
)

const (
	defaultRealtimeURL = "wss://api.openai.com/v1/realtime"
	defaultModel       = "gpt-realtime"
	defaultVoice       = "echo"

	writeTimeout = 10 * time.Second
)

type Config struct {
	APIKey string
	Model  string
	Voice  string
	URL    string
	Log    *slog.Logger
}

// Engine is a realtime session client. It records the desired session
// state (instructions, speed) locally and replays it to the server after
// every (re)connect, so a supervisor restart does not lose the standing
// instructions.
type Engine struct {
	cfg Config

	mu           sync.Mutex
	conn         *websocket.Conn
	instructions string
	speed        float64

	onItem func(role string, content []string)
	log    *slog.Logger
}

func New(cfg Config) *Engine {
	if cfg.URL == "" {
		cfg.URL = defaultRealtimeURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Voice == "" {
		cfg.Voice = defaultVoice
	}
	return &Engine{cfg: cfg, speed: 1.0, log: cfg.Log}
}

// OnConversationItem registers the callback invoked for every
// conversation item the server surfaces. Must be set before Run.
func (e *Engine) OnConversationItem(fn func(role string, content []string)) {
	e.onItem = fn
}

// Run implements the Worker interface: it dials the realtime endpoint,
// replays the desired session state, and pumps server events until the
// context ends or the socket drops. A returned error makes the
// supervisor redial.
func (e *Engine) Run(ctx context.Context) error {
	conn, err := e.dial(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.conn = conn
	e.mu.Unlock()

	if err := e.syncSession(); err != nil {
		e.log.Warn("Realtime session sync failed after connect", "error", err)
	}

	// Close the socket when the context ends so ReadMessage unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			e.mu.Lock()
			e.conn = nil
			e.mu.Unlock()
			conn.Close()
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("openai: realtime socket closed: %w", err)
		}
		e.handleServerEvent(data)
	}
}

func (e *Engine) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+e.cfg.APIKey)
	header.Set("OpenAI-Beta", "realtime=v1")

	url := fmt.Sprintf("%s?model=%s", e.cfg.URL, e.cfg.Model)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("openai: dial realtime endpoint: %w", err)
	}
	e.log.Info("Realtime session connected", "model", e.cfg.Model)
	return conn, nil
}

// syncSession pushes voice, instructions, and speed in one patch.
func (e *Engine) syncSession() error {
	e.mu.Lock()
	patch := sessionPatch{Voice: e.cfg.Voice, Speed: &e.speed}
	if e.instructions != "" {
		instructions := e.instructions
		patch.Instructions = &instructions
	}
	e.mu.Unlock()
	return e.send(clientEvent{Type: "session.update", Session: &patch})
}

func (e *Engine) handleServerEvent(data []byte) {
	var evt serverEvent
	if err := sonic.Unmarshal(data, &evt); err != nil {
		e.log.Debug("Unparseable realtime server event", "error", err)
		return
	}

	switch evt.Type {
	case "conversation.item.created", "conversation.item.added":
		if evt.Item == nil || e.onItem == nil {
			return
		}
		content := make([]string, 0, len(evt.Item.Content))
		for _, part := range evt.Item.Content {
			if text := part.text(); text != "" {
				content = append(content, text)
			}
		}
		e.onItem(evt.Item.Role, content)
	case "error":
		if evt.Error != nil {
			e.log.Error("Realtime server error", "code", evt.Error.Code, "message", evt.Error.Message)
		}
	}
}

// UpdateInstructions replaces the standing instructions for all
// subsequent turns.
func (e *Engine) UpdateInstructions(_ context.Context, text string) error {
	e.mu.Lock()
	e.instructions = text
	e.mu.Unlock()
	instructions := text
	return e.send(clientEvent{Type: "session.update", Session: &sessionPatch{Instructions: &instructions}})
}

// SetSpeed adjusts the generation speed factor.
func (e *Engine) SetSpeed(_ context.Context, factor float64) error {
	e.mu.Lock()
	e.speed = factor
	e.mu.Unlock()
	speed := factor
	return e.send(clientEvent{Type: "session.update", Session: &sessionPatch{Speed: &speed}})
}

// GenerateReply asks the model for one spoken reply following the given
// one-off instructions.
func (e *Engine) GenerateReply(_ context.Context, instructions string) error {
	return e.send(clientEvent{Type: "response.create", Response: &responseParams{Instructions: instructions}})
}

func (e *Engine) send(evt clientEvent) error {
	data, err := sonic.Marshal(evt)
	if err != nil {
		return fmt.Errorf("openai: marshal %s: %w", evt.Type, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.conn == nil {
		// Desired state is already recorded; it is replayed on the next
		// connect.
		return fmt.Errorf("openai: %s: %w", evt.Type, errors.ErrEngineNotConnected)
	}
	if err := e.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("openai: set write deadline: %w", err)
	}
	if err := e.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("openai: write %s: %w", evt.Type, err)
	}
	return nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.conn == nil {
		return nil
	}
	err := e.conn.Close()
	e.conn = nil
	return err
}
