package avatar

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"kai-agent/errors"
)

const defaultAvatarName = "beyond_presence"

// fileConfig mirrors the avatar configuration file layout.
type fileConfig struct {
	DefaultAvatar string                 `json:"default_avatar"`
	Avatars       map[string]avatarEntry `json:"avatars"`
}

type avatarEntry struct {
	Provider            string `json:"provider"`
	Enabled             *bool  `json:"enabled"`
	AvatarID            string `json:"avatar_id"`
	Name                string `json:"name"`
	ModelPath           string `json:"model_path"`
	ParticipantIdentity string `json:"participant_identity"`
	ParticipantName     string `json:"participant_name"`
}

// Loader reads avatar configurations from a JSON file. A missing file is
// not an error condition: it degrades to an empty configuration and no
// avatar is started.
type Loader struct {
	path string
	log  *slog.Logger
	data fileConfig
}

func NewLoader(path string, log *slog.Logger) *Loader {
	l := &Loader{path: path, log: log}
	l.Reload()
	return l
}

// Reload re-reads the configuration file, replacing the in-memory view.
func (l *Loader) Reload() {
	data, err := os.ReadFile(l.path)
	if err != nil {
		l.log.Warn("Avatar config file not readable, using empty configuration", "path", l.path, "error", err)
		l.data = fileConfig{}
		return
	}
	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		l.log.Error("Avatar config file invalid, using empty configuration", "path", l.path, "error", err)
		l.data = fileConfig{}
		return
	}
	l.data = cfg
	l.log.Info("Avatar configuration loaded", "path", l.path, "avatars", len(cfg.Avatars))
}

// Names lists the configured avatar names, sorted.
func (l *Loader) Names() []string {
	names := make([]string, 0, len(l.data.Avatars))
	for name := range l.data.Avatars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultName returns the configured default avatar name.
func (l *Loader) DefaultName() string {
	if l.data.DefaultAvatar == "" {
		return defaultAvatarName
	}
	return l.data.DefaultAvatar
}

// Get resolves an avatar name (empty selects the default) into a Config.
func (l *Loader) Get(name string) (*Config, error) {
	if name == "" {
		name = l.DefaultName()
	}
	entry, ok := l.data.Avatars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrAvatarNotFound, name)
	}

	provider := ProviderType(entry.Provider)
	if !KnownProvider(provider) {
		return nil, fmt.Errorf("avatar %q: unknown provider %q", name, entry.Provider)
	}

	cfg := &Config{
		Provider:            provider,
		ParticipantIdentity: entry.ParticipantIdentity,
		ParticipantName:     entry.ParticipantName,
		Enabled:             entry.Enabled == nil || *entry.Enabled,
	}
	switch provider {
	case ProviderBeyondPresence:
		cfg.BeyAvatarID = entry.AvatarID
	case ProviderAnam:
		cfg.AnamAvatarID = entry.AvatarID
		cfg.AnamName = entry.Name
	case ProviderBitHuman:
		cfg.BitHumanModelPath = entry.ModelPath
	case ProviderHedra:
		cfg.HedraAvatarID = entry.AvatarID
	case ProviderSimli:
		cfg.SimliFaceID = entry.AvatarID
	case ProviderTavus:
		cfg.TavusAvatarID = entry.AvatarID
	}
	return cfg, nil
}
