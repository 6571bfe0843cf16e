// Package instructions builds the behavioral instruction text sent to the
// turn engine: a base prompt selected by proficiency tier plus an ordered
// list of named modifier blocks, rendered deterministically.
package instructions

import (
	"strings"
	"sync"

	"kai-agent/domain"
)

// UnknownPlaceholder substitutes template variables whose participant
// field is absent.
const UnknownPlaceholder = "<UNKNOWN>"

// Compile substitutes {{name}}, {{cefr_level}} and {{native_language}}
// in a raw template. Absent fields render as UnknownPlaceholder.
func Compile(template string, p domain.Participant) string {
	name := p.Name
	if name == "" {
		name = UnknownPlaceholder
	}
	level := string(p.CEFRLevel)
	if level == "" {
		level = UnknownPlaceholder
	}
	native := p.NativeLanguage
	if native == "" {
		native = UnknownPlaceholder
	}

	r := strings.NewReplacer(
		"{{name}}", name,
		"{{cefr_level}}", level,
		"{{native_language}}", native,
	)
	return r.Replace(template)
}

type modifier struct {
	name string
	text string
}

// Composer holds the current instruction state for one session: the base
// prompt and its modifier blocks. Rendering is deterministic; applying
// the same modifier twice yields the same text as applying it once.
// Safe for concurrent use.
type Composer struct {
	mu        sync.Mutex
	base      string
	modifiers []modifier
}

func NewComposer() *Composer {
	return &Composer{}
}

// SetBase replaces the base prompt. Modifier blocks are preserved.
func (c *Composer) SetBase(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = text
}

// Base returns the current base prompt without modifier blocks.
func (c *Composer) Base() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base
}

// SetModifier upserts a named modifier block, keeping insertion order for
// blocks that already exist.
func (c *Composer) SetModifier(name, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.modifiers {
		if c.modifiers[i].name == name {
			c.modifiers[i].text = text
			return
		}
	}
	c.modifiers = append(c.modifiers, modifier{name: name, text: text})
}

// ClearModifier removes a named modifier block if present.
func (c *Composer) ClearModifier(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.modifiers {
		if c.modifiers[i].name == name {
			c.modifiers = append(c.modifiers[:i], c.modifiers[i+1:]...)
			return
		}
	}
}

// Render produces the full instruction text: base followed by each
// modifier block separated by blank lines.
func (c *Composer) Render() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	parts := make([]string, 0, 1+len(c.modifiers))
	parts = append(parts, c.base)
	for _, m := range c.modifiers {
		parts = append(parts, m.text)
	}
	return strings.Join(parts, "\n\n")
}
