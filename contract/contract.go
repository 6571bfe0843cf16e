//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"kai-agent/domain"
	"kai-agent/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual naming
// in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes session events. Sinks must absorb downstream
// failures: a returned error is logged by the caller, never propagated
// into the session.
type EventSink interface {
	Consume(ctx context.Context, e event.SessionEvent) error
}

// AnalysisClient delivers one transcript batch to the analysis backend.
type AnalysisClient interface {
	Analyze(ctx context.Context, voiceCallID int, messages []domain.TranscriptMessage) error
}

// PromptStore resolves a template id against the external prompt store
// and returns the raw (uncompiled) template text.
type PromptStore interface {
	GetPrompt(ctx context.Context, name string) (string, error)
}

// TurnEngine is the conversational engine driving the live call.
// All methods are safe for concurrent use.
type TurnEngine interface {
	// UpdateInstructions replaces the agent's standing behavioral
	// instructions for all subsequent turns.
	UpdateInstructions(ctx context.Context, text string) error
	// SetSpeed adjusts the generation speed factor (1.0 is default).
	SetSpeed(ctx context.Context, factor float64) error
	// GenerateReply asks the engine to produce one spoken reply following
	// the given one-off instructions.
	GenerateReply(ctx context.Context, instructions string) error
	Close() error
}

// RemoteParticipant is the transport's view of a remote room member.
type RemoteParticipant interface {
	Identity() string
	Metadata() string
}

// Room is the transport's view of the session's room.
type Room interface {
	Name() string
	RemoteParticipants() []RemoteParticipant
}

// AvatarProvider renders a visual presence for the agent in the room.
// Implementations wrap one vendor backend.
type AvatarProvider interface {
	// CreateSession validates provider configuration and prepares the
	// vendor session. It performs no remote calls that join the room.
	CreateSession(ctx context.Context) error
	// Start joins the avatar to the room. serverURL is the media server
	// the avatar connects to.
	Start(ctx context.Context, serverURL string, room Room) error
	// Stop tears the avatar down. Providers without a remote teardown
	// call just clear local state.
	Stop(ctx context.Context) error
	Active() bool
}

// TranscriptUploader ships a local transcript artifact to the external
// evaluation store.
type TranscriptUploader interface {
	Upload(ctx context.Context, path string) error
}
