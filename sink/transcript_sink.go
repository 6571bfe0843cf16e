package sink

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"kai-agent/contract"
	"kai-agent/domain"
	"kai-agent/domain/event"
)

// FlushThreshold is the buffered message count that triggers a dispatch.
// The check runs before the triggering message is appended, so a message
// is never part of the batch it triggers.
const FlushThreshold = 4

// TranscriptSink accumulates role-tagged transcript messages and ships
// them to the analysis backend in bounded batches. Delivery is
// at-most-once: the buffer is cleared whether or not the dispatch
// succeeds, and failures are logged and discarded.
type TranscriptSink struct {
	mu          sync.Mutex
	client      contract.AnalysisClient
	log         *slog.Logger
	voiceCallID int
	threshold   int
	participant *domain.Participant
	messages    []domain.TranscriptMessage
}

func NewTranscriptSink(client contract.AnalysisClient, log *slog.Logger, voiceCallID, threshold int) *TranscriptSink {
	if threshold <= 0 {
		threshold = FlushThreshold
	}
	return &TranscriptSink{
		client:      client,
		log:         log,
		voiceCallID: voiceCallID,
		threshold:   threshold,
	}
}

// Bind attaches the resolved participant. Dispatch is a no-op until a
// participant is bound. First bind wins.
func (s *TranscriptSink) Bind(p *domain.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.participant == nil {
		s.participant = p
	}
}

// Len returns the number of buffered messages.
func (s *TranscriptSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Consume implements the EventSink interface. Conversation items run the
// threshold check before the incoming message is appended; disconnect and
// teardown events flush whatever is buffered.
func (s *TranscriptSink) Consume(ctx context.Context, e event.SessionEvent) error {
	switch evt := e.(type) {
	case event.ConversationItemAdded:
		s.consumeItem(ctx, evt)
	case event.ParticipantDisconnected, event.SessionClosed:
		s.Flush(ctx)
	}
	return nil
}

func (s *TranscriptSink) consumeItem(ctx context.Context, evt event.ConversationItemAdded) {
	s.mu.Lock()
	var batch []domain.TranscriptMessage
	if len(s.messages) >= s.threshold {
		batch = s.messages
		s.messages = nil
	}
	s.mu.Unlock()

	// The flushed batch is delivered before the triggering message is
	// appended, so the dispatch completes against a stable snapshot.
	if batch != nil {
		s.dispatch(ctx, batch)
	}

	role, ok := domain.RoleFromTurn(evt.Role)
	if !ok {
		// System and tool items never reach the analysis backend.
		return
	}

	s.mu.Lock()
	s.messages = append(s.messages, domain.TranscriptMessage{
		Role:    role,
		Content: strings.Join(evt.Content, "\n"),
	})
	s.mu.Unlock()
}

// Flush dispatches the current buffer and clears it. An empty buffer
// produces no network call.
func (s *TranscriptSink) Flush(ctx context.Context) {
	s.mu.Lock()
	batch := s.messages
	s.messages = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	s.dispatch(ctx, batch)
}

func (s *TranscriptSink) dispatch(ctx context.Context, batch []domain.TranscriptMessage) {
	s.mu.Lock()
	participant := s.participant
	s.mu.Unlock()

	if participant == nil {
		s.log.Debug("Dropping transcript batch, participant unresolved", "messages", len(batch))
		return
	}
	if err := s.client.Analyze(ctx, s.voiceCallID, batch); err != nil {
		s.log.Error("Transcript analysis dispatch failed", "voice_call_id", s.voiceCallID, "messages", len(batch), "error", err)
	}
}
