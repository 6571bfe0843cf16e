package domain

import "strings"

// CEFRLevel is the student's language proficiency tier (A1 through C2).
// The zero value means the level is not known.
type CEFRLevel string

const (
	LevelA1      CEFRLevel = "A1"
	LevelA2      CEFRLevel = "A2"
	LevelB1      CEFRLevel = "B1"
	LevelB2      CEFRLevel = "B2"
	LevelC1      CEFRLevel = "C1"
	LevelC2      CEFRLevel = "C2"
	LevelUnknown CEFRLevel = ""
)

// ParseCEFRLevel normalises a raw level string. Anything outside the six
// CEFR tiers maps to LevelUnknown.
func ParseCEFRLevel(raw string) CEFRLevel {
	switch l := CEFRLevel(strings.ToUpper(strings.TrimSpace(raw))); l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return l
	default:
		return LevelUnknown
	}
}

// Beginner reports whether the level selects the beginner prompt family.
func (l CEFRLevel) Beginner() bool {
	return l == LevelA1 || l == LevelA2
}

// Participant is the human side of a session, resolved once from room
// metadata and immutable for the session's lifetime.
type Participant struct {
	ID             int
	Name           string
	CEFRLevel      CEFRLevel
	NativeLanguage string
}
