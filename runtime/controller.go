package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bytedance/sonic"

	"kai-agent/avatar"
	"kai-agent/contract"
	"kai-agent/domain"
	"kai-agent/domain/event"
	"kai-agent/instructions"
	"kai-agent/resolver"
	"kai-agent/sink"
)

const defaultEventBuffer = 64

// ControllerDeps carries everything one session needs. The transcript
// sink is named separately from the other sinks because binding the
// student flows through it.
type ControllerDeps struct {
	Log        *slog.Logger
	RoomName   string
	ServerURL  string
	Resolver   *resolver.Resolver
	Composer   *instructions.Composer
	Transcript *sink.TranscriptSink
	Sinks      []contract.EventSink
	Avatars    *avatar.Manager
	Engine     contract.TurnEngine
	Prompts    contract.PromptStore
	PromptIDs  instructions.Settings
	BufferSize int
}

// SessionController serializes all session mutation through a single
// event loop. Transport and engine callbacks only enqueue; the loop is
// the sole place session state transitions happen, so no ordering bugs
// can arise between a disconnect and a trailing conversation item.
type SessionController struct {
	log       *slog.Logger
	roomName  string
	serverURL string

	events     chan event.SessionEvent
	resolver   *resolver.Resolver
	composer   *instructions.Composer
	transcript *sink.TranscriptSink
	sinks      []contract.EventSink
	avatars    *avatar.Manager
	engine     contract.TurnEngine
	prompts    contract.PromptStore
	promptIDs  instructions.Settings

	mu   sync.RWMutex
	room contract.Room

	done     chan struct{}
	doneOnce sync.Once
}

func NewSessionController(deps ControllerDeps) *SessionController {
	size := deps.BufferSize
	if size <= 0 {
		size = defaultEventBuffer
	}

	sinks := deps.Sinks
	if deps.Transcript != nil {
		sinks = append([]contract.EventSink{deps.Transcript}, sinks...)
	}

	return &SessionController{
		log:        deps.Log,
		roomName:   deps.RoomName,
		serverURL:  deps.ServerURL,
		events:     make(chan event.SessionEvent, size),
		resolver:   deps.Resolver,
		composer:   deps.Composer,
		transcript: deps.Transcript,
		sinks:      sinks,
		avatars:    deps.Avatars,
		engine:     deps.Engine,
		prompts:    deps.Prompts,
		promptIDs:  deps.PromptIDs,
		done:       make(chan struct{}),
	}
}

// Done is closed once the event loop has exited, after the final flush.
// Shutdown paths wait on it before tearing the process down.
func (c *SessionController) Done() <-chan struct{} {
	return c.done
}

// AttachRoom hands the connected room to the controller. Must happen
// before Start; the controller never dials the room itself.
func (c *SessionController) AttachRoom(room contract.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.room = room
}

func (c *SessionController) currentRoom() contract.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.room
}

// Start brings up the session extras: the avatar (fail-soft, the
// session continues voice-only when it cannot start) and a first
// binding attempt against participants already present in the room.
func (c *SessionController) Start(ctx context.Context) {
	if c.avatars != nil {
		c.avatars.Start(ctx, c.serverURL, c.currentRoom())
		if !c.avatars.Active() {
			c.log.Warn("No avatar active, continuing voice-only", "room", c.roomName)
		}
	}
	go c.tryBind(ctx)
}

// Dispatch enqueues an event without blocking. Callbacks from the
// transport and engine run on foreign goroutines and must never stall
// on a busy session; a full buffer drops the event with a warning.
func (c *SessionController) Dispatch(e event.SessionEvent) {
	select {
	case c.events <- e:
	default:
		c.log.Warn("Event buffer full, dropping event", "room", c.roomName, "event", fmt.Sprintf("%T", e))
	}
}

// Run implements the Worker interface: it drains the event channel
// until the session closes or the context ends.
func (c *SessionController) Run(ctx context.Context) error {
	defer c.doneOnce.Do(func() { close(c.done) })
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-c.events:
			if c.handle(ctx, e) {
				return nil
			}
		}
	}
}

// handle reports true when the session is finished.
func (c *SessionController) handle(ctx context.Context, e event.SessionEvent) bool {
	switch evt := e.(type) {
	case event.ParticipantConnected:
		go c.tryBind(ctx)

	case event.ConversationItemAdded:
		if c.resolver.Participant() == nil {
			go c.tryBind(ctx)
		}
		c.forward(ctx, evt)

	case event.ParticipantDisconnected:
		c.forward(ctx, evt)

	case event.SessionClosed:
		c.forward(ctx, evt)
		c.shutdown(ctx)
		return true
	}
	return false
}

func (c *SessionController) forward(ctx context.Context, e event.SessionEvent) {
	for _, s := range c.sinks {
		if err := s.Consume(ctx, e); err != nil {
			c.log.Error("Sink failed to consume event", "room", c.roomName, "error", err)
		}
	}
}

func (c *SessionController) shutdown(ctx context.Context) {
	if c.avatars != nil {
		c.avatars.Stop(ctx)
	}
	if err := c.engine.Close(); err != nil {
		c.log.Warn("Engine close failed", "room", c.roomName, "error", err)
	}
	c.log.Info("Session closed", "room", c.roomName)
}

// tryBind attempts to bind the student. The resolver guarantees
// first-wins under concurrent attempts, so this is safe to fire from
// several places; only the winning call runs the post-bind sequence.
func (c *SessionController) tryBind(ctx context.Context) {
	room := c.currentRoom()
	if room == nil {
		return
	}

	participant, bound := c.resolver.Resolve(room.RemoteParticipants())
	if !bound || participant == nil {
		return
	}

	c.log.Info("Student bound",
		"room", c.roomName,
		"student_id", participant.ID,
		"cefr_level", string(participant.CEFRLevel),
	)

	if c.transcript != nil {
		c.transcript.Bind(participant)
	}

	c.applyInstructions(ctx, *participant)
	c.greet(ctx, *participant)
}

// applyInstructions fetches the level-appropriate prompt template,
// compiles it with the student's profile, and pushes it to the engine.
// A prompt-store failure leaves the engine's current instructions in
// place rather than blanking them.
func (c *SessionController) applyInstructions(ctx context.Context, p domain.Participant) {
	name := c.promptIDs.TemplateFor(p.CEFRLevel)
	template, err := c.prompts.GetPrompt(ctx, name)
	if err != nil {
		c.log.Error("Prompt fetch failed, keeping current instructions", "prompt", name, "error", err)
		return
	}

	c.composer.SetBase(instructions.Compile(template, p))
	if err := c.engine.UpdateInstructions(ctx, c.composer.Render()); err != nil {
		c.log.Error("Instruction update failed", "room", c.roomName, "error", err)
	}
}

// greet asks the engine for one opening reply that introduces the
// student's profile to the model.
func (c *SessionController) greet(ctx context.Context, p domain.Participant) {
	greeting := fmt.Sprintf(
		"Student name is %s, their CEFR level is %s, their native language is %s",
		orUnknown(p.Name), orUnknown(string(p.CEFRLevel)), orUnknown(p.NativeLanguage),
	)
	if err := c.engine.GenerateReply(ctx, greeting); err != nil {
		c.log.Error("Greeting reply failed", "room", c.roomName, "error", err)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return instructions.UnknownPlaceholder
	}
	return s
}

// AdjustSpeed applies a named speed preset to both the composed
// instructions and the engine's generation factor. An unknown preset is
// a caller error and is returned; engine push failures are logged only,
// since the recorded state is replayed on the next reconnect.
func (c *SessionController) AdjustSpeed(ctx context.Context, raw string) error {
	preset, err := instructions.ParseSpeedPreset(raw)
	if err != nil {
		return err
	}

	c.composer.ApplySpeed(preset)
	if err := c.engine.UpdateInstructions(ctx, c.composer.Render()); err != nil {
		c.log.Error("Instruction update failed", "room", c.roomName, "error", err)
	}
	if err := c.engine.SetSpeed(ctx, preset.EngineFactor()); err != nil {
		c.log.Error("Speed update failed", "room", c.roomName, "error", err)
	}

	c.log.Info("Voice speed adjusted", "room", c.roomName, "preset", string(preset))
	return nil
}

type speedRequest struct {
	Preset string `json:"preset"`
}

// HandleSpeedRPC services the set_voice_speed RPC. Malformed payloads
// and unknown presets are reported in the response payload so the
// caller can surface them; only transport-level problems become errors.
func (c *SessionController) HandleSpeedRPC(ctx context.Context, payload string) (string, error) {
	var req speedRequest
	if err := sonic.Unmarshal([]byte(payload), &req); err != nil {
		return fmt.Sprintf("invalid payload: %v", err), nil
	}

	if err := c.AdjustSpeed(ctx, req.Preset); err != nil {
		return err.Error(), nil
	}
	return "ok", nil
}
