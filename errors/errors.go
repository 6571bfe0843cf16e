package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrUnknownSpeedPreset = fmt.Errorf("unknown voice speed preset")
	ErrNoParticipant      = fmt.Errorf("no remote participant to resolve")
	ErrAvatarNotFound     = fmt.Errorf("avatar not found in configuration")
	ErrEngineNotConnected = fmt.Errorf("turn engine not connected")
)
