package services

import (
	"context"
	"log/slog"

	"kai-agent/contract"
	"kai-agent/domain/event"
	"kai-agent/runtime"
)

type ISessionService interface {
	StartSession(ctx context.Context, roomName string) (*runtime.SessionController, error)
	StopSession(roomName string)
	Controller(roomName string) *runtime.SessionController
	ActiveSessions() int
}

// SessionFactory builds a fully wired controller for a room, including
// transport connection. The service does not know how sessions are
// assembled; the entry point provides the factory.
type SessionFactory func(ctx context.Context, roomName string) (*runtime.SessionController, error)

// SessionService owns the session lifecycle for this process: create,
// index, supervise, close. Starting an already-live room is idempotent
// and returns the running controller.
type SessionService struct {
	log        *slog.Logger
	registry   *runtime.Registry
	supervisor contract.ISupervisor
	factory    SessionFactory
}

func NewSessionService(log *slog.Logger, registry *runtime.Registry, supervisor contract.ISupervisor, factory SessionFactory) *SessionService {
	return &SessionService{
		log:        log,
		registry:   registry,
		supervisor: supervisor,
		factory:    factory,
	}
}

func (s *SessionService) StartSession(ctx context.Context, roomName string) (*runtime.SessionController, error) {
	if existing := s.registry.Get(roomName); existing != nil {
		return existing, nil
	}

	controller, err := s.factory(ctx, roomName)
	if err != nil {
		return nil, err
	}

	s.registry.Add(roomName, controller)
	s.supervisor.Start(ctx, controller)
	controller.Start(ctx)

	s.log.Info("Session started", "room", roomName)
	return controller, nil
}

// StopSession closes the room's session. The close event flushes the
// sinks before the controller's loop exits, so no buffered transcript
// is lost.
func (s *SessionService) StopSession(roomName string) {
	controller := s.registry.Get(roomName)
	if controller == nil {
		return
	}
	controller.Dispatch(event.SessionClosed{RoomName: roomName})
	s.registry.Remove(roomName)
}

func (s *SessionService) Controller(roomName string) *runtime.SessionController {
	return s.registry.Get(roomName)
}

func (s *SessionService) ActiveSessions() int {
	return s.registry.Len()
}
