package domain

// Role tags a transcript message with its speaker as the analysis
// backend expects it.
type Role string

const (
	RoleStudent Role = "student"
	RoleKai     Role = "kai"
)

// RoleFromTurn maps turn-engine item roles onto transcript roles.
// Unrecognised roles (system, tool, ...) are reported as not ok and
// dropped by the caller.
func RoleFromTurn(role string) (Role, bool) {
	switch role {
	case "user":
		return RoleStudent, true
	case "assistant":
		return RoleKai, true
	default:
		return "", false
	}
}

// TranscriptMessage is one role-tagged utterance, ordered by arrival.
type TranscriptMessage struct {
	Role    Role
	Content string
}
