package instructions

import (
	"encoding/json"
	"fmt"
	"os"

	"kai-agent/domain"
)

// Settings names the prompt-store template ids for each proficiency
// family. Loaded from a small JSON file so templates can be swapped
// without redeploying the agent.
type Settings struct {
	VoiceCallPromptA     string `json:"voice_call_prompt_a"`
	VoiceCallPromptBAndC string `json:"voice_call_prompt_b_and_c"`
}

// DefaultSettings returns the template ids used when no prompt file is
// present.
func DefaultSettings() Settings {
	return Settings{
		VoiceCallPromptA:     "kai_voice_call_prompt_a",
		VoiceCallPromptBAndC: "kai_voice_call_prompt_b_and_c",
	}
}

// LoadSettings reads the prompt file. A missing or unreadable file
// degrades to defaults; the error is returned so the caller can log it.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("prompt settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("prompt settings: parse %s: %w", path, err)
	}
	if s.VoiceCallPromptA == "" {
		s.VoiceCallPromptA = DefaultSettings().VoiceCallPromptA
	}
	if s.VoiceCallPromptBAndC == "" {
		s.VoiceCallPromptBAndC = DefaultSettings().VoiceCallPromptBAndC
	}
	return s, nil
}

// TemplateFor selects the template id for a proficiency level: A1/A2 use
// the beginner template, every other tier (unknown included) the B/C one.
func (s Settings) TemplateFor(level domain.CEFRLevel) string {
	if level.Beginner() {
		return s.VoiceCallPromptA
	}
	return s.VoiceCallPromptBAndC
}
