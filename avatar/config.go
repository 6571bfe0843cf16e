// Package avatar selects and runs one pluggable avatar rendering backend
// for the agent's visual presence. Provider failures are absorbed here;
// an avatar problem must never end a session.
package avatar

// ProviderType enumerates the avatar backends recognised in
// configuration. Only a subset has a registered implementation; the rest
// resolve to "unsupported" and the session continues without an avatar.
type ProviderType string

const (
	ProviderBeyondPresence ProviderType = "bey"
	ProviderAnam           ProviderType = "anam"
	ProviderBitHuman       ProviderType = "bithuman"
	ProviderHedra          ProviderType = "hedra"
	ProviderSimli          ProviderType = "simli"
	ProviderTavus          ProviderType = "tavus"
)

// KnownProvider reports whether the tag is one we recognise in
// configuration, registered implementation or not.
func KnownProvider(t ProviderType) bool {
	switch t {
	case ProviderBeyondPresence, ProviderAnam, ProviderBitHuman,
		ProviderHedra, ProviderSimli, ProviderTavus:
		return true
	default:
		return false
	}
}

// Config carries one avatar's settings. Only the fields of the selected
// provider are required.
type Config struct {
	Provider            ProviderType
	ParticipantIdentity string
	ParticipantName     string
	Enabled             bool

	BeyAvatarID       string
	AnamAvatarID      string
	AnamName          string
	BitHumanModelPath string
	HedraAvatarID     string
	SimliFaceID       string
	TavusAvatarID     string
}
