package instructions

import (
	"fmt"
	"strings"

	"kai-agent/errors"
)

// SpeedPreset is a user-selectable speaking speed for the agent.
type SpeedPreset string

const (
	SpeedNormal SpeedPreset = "normal"
	SpeedSlow   SpeedPreset = "slow"
)

const (
	speedModifierName = "speed"

	slowSpeedText = "Speak slowly and clearly. Use short sentences, pause between them, " +
		"and articulate every word so the student can follow along."

	slowEngineFactor   = 0.85
	normalEngineFactor = 1.0
)

// ParseSpeedPreset validates a raw preset value. Input is trimmed and
// case-insensitive; anything outside {slow, normal} is a value-level error.
func ParseSpeedPreset(raw string) (SpeedPreset, error) {
	switch p := SpeedPreset(strings.ToLower(strings.TrimSpace(raw))); p {
	case SpeedNormal, SpeedSlow:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownSpeedPreset, raw)
	}
}

// EngineFactor maps the preset onto the turn engine's generation speed
// parameter.
func (p SpeedPreset) EngineFactor() float64 {
	if p == SpeedSlow {
		return slowEngineFactor
	}
	return normalEngineFactor
}

// ApplySpeed mutates the composer's speed modifier block for the preset.
// Slow upserts the block, normal removes it. Both directions are
// idempotent.
func (c *Composer) ApplySpeed(preset SpeedPreset) {
	if preset == SpeedSlow {
		c.SetModifier(speedModifierName, slowSpeedText)
		return
	}
	c.ClearModifier(speedModifierName)
}
