// Package domain contains core concepts of a voice-call session.
// No runtime, network, or transport logic should be added here.
package domain

import (
	"fmt"
	"strconv"
)

// SessionState tracks the lifecycle of a single voice-call session.
type SessionState int

const (
	SessionUnbound SessionState = iota
	SessionBound
	SessionClosed
)

func (s SessionState) String() string {
	switch s {
	case SessionUnbound:
		return "unbound"
	case SessionBound:
		return "bound"
	case SessionClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// VoiceCallID derives the backend voice-call identifier from the room name.
// Rooms are created by the backend with the call id as their name.
func VoiceCallID(roomName string) (int, error) {
	id, err := strconv.Atoi(roomName)
	if err != nil {
		return 0, fmt.Errorf("room %q is not a numeric voice call id: %w", roomName, err)
	}
	return id, nil
}
