// Package livekit adapts a LiveKit room to the transport surface the
// session controller consumes. The adapter stays thin on purpose: media
// tracks, codecs, and job scheduling belong to the hosting runtime, not
// to the session.
package livekit

import (
	"context"
	"fmt"
	"log/slog"

	lksdk "github.com/livekit/server-sdk-go/v2"

	"kai-agent/contract"
)

type Config struct {
	URL       string
	APIKey    string
	APISecret string
	RoomName  string
	Identity  string
	Name      string
	Log       *slog.Logger
}

// Handlers are the room events the session cares about. Callbacks run on
// the SDK's goroutines and must not block; they typically enqueue into
// the controller's event channel.
type Handlers struct {
	OnParticipantConnected    func(identity string)
	OnParticipantDisconnected func(identity string)
	// OnSpeedRequest services the set_voice_speed RPC. The returned
	// string is delivered to the caller as the RPC response payload.
	OnSpeedRequest func(ctx context.Context, payload string) (string, error)
}

// Room wraps the connected SDK room behind the contract.Room interface.
type Room struct {
	room *lksdk.Room
	log  *slog.Logger
}

// Connect joins the room as the agent participant and wires callbacks.
func Connect(ctx context.Context, cfg Config, h Handlers) (*Room, error) {
	log := cfg.Log
	identity := cfg.Identity
	if identity == "" {
		identity = "kai-agent"
	}
	name := cfg.Name
	if name == "" {
		name = identity
	}

	callback := &lksdk.RoomCallback{
		ParticipantCallback: lksdk.ParticipantCallback{},
		OnParticipantConnected: func(rp *lksdk.RemoteParticipant) {
			if h.OnParticipantConnected != nil {
				h.OnParticipantConnected(rp.Identity())
			}
		},
		OnParticipantDisconnected: func(rp *lksdk.RemoteParticipant) {
			if h.OnParticipantDisconnected != nil {
				h.OnParticipantDisconnected(rp.Identity())
			}
		},
	}

	room, err := lksdk.ConnectToRoom(
		cfg.URL,
		lksdk.ConnectInfo{
			APIKey:              cfg.APIKey,
			APISecret:           cfg.APISecret,
			RoomName:            cfg.RoomName,
			ParticipantIdentity: identity,
			ParticipantName:     name,
			ParticipantKind:     lksdk.ParticipantAgent,
		},
		callback,
		lksdk.WithAutoSubscribe(true),
	)
	if err != nil {
		return nil, fmt.Errorf("livekit: connect to room %q: %w", cfg.RoomName, err)
	}

	r := &Room{room: room, log: log}
	if h.OnSpeedRequest != nil {
		err := room.RegisterRpcMethod("set_voice_speed",
			func(data lksdk.RpcInvocationData) (string, error) {
				return h.OnSpeedRequest(context.Background(), data.Payload)
			})
		if err != nil {
			log.Warn("set_voice_speed RPC registration failed", "error", err)
		}
	}

	log.Info("Connected to room", "room", cfg.RoomName, "identity", identity)
	return r, nil
}

func (r *Room) Name() string {
	return r.room.Name()
}

// RemoteParticipants snapshots the room's current remote participants.
func (r *Room) RemoteParticipants() []contract.RemoteParticipant {
	remotes := r.room.GetRemoteParticipants()
	participants := make([]contract.RemoteParticipant, 0, len(remotes))
	for _, rp := range remotes {
		participants = append(participants, remoteParticipant{rp: rp})
	}
	return participants
}

func (r *Room) Disconnect() {
	r.room.Disconnect()
}

type remoteParticipant struct {
	rp *lksdk.RemoteParticipant
}

func (p remoteParticipant) Identity() string { return p.rp.Identity() }
func (p remoteParticipant) Metadata() string { return p.rp.Metadata() }
