// Package event defines the session events routed through a controller's
// event channel. Events are immutable values; producers never block on
// consumers.
package event

// SessionEvent is implemented by every event a session controller consumes.
type SessionEvent interface {
	Room() string
}

// ParticipantConnected signals that a remote participant joined the room.
type ParticipantConnected struct {
	RoomName string
}

func (e ParticipantConnected) Room() string { return e.RoomName }

// ParticipantDisconnected signals that a remote participant left the room.
type ParticipantDisconnected struct {
	RoomName string
	Identity string
}

func (e ParticipantDisconnected) Room() string { return e.RoomName }

// ConversationItemAdded carries one turn surfaced by the turn engine.
// Content holds the item's content parts; consumers join them with
// newlines.
type ConversationItemAdded struct {
	RoomName string
	Role     string
	Content  []string
}

func (e ConversationItemAdded) Room() string { return e.RoomName }

// SessionClosed requests session teardown. The controller flushes what it
// can, stops the avatar, and exits its loop.
type SessionClosed struct {
	RoomName string
}

func (e SessionClosed) Room() string { return e.RoomName }
