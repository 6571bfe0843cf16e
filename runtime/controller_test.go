package runtime_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kai-agent/contract"
	"kai-agent/domain"
	"kai-agent/domain/event"
	"kai-agent/errors"
	"kai-agent/instructions"
	"kai-agent/mocks"
	"kai-agent/resolver"
	"kai-agent/runtime"
	"kai-agent/sink"
)

const roomName = "42"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newController(engine contract.TurnEngine, prompts contract.PromptStore, transcript *sink.TranscriptSink, sinks ...contract.EventSink) *runtime.SessionController {
	logger := discardLogger()
	return runtime.NewSessionController(runtime.ControllerDeps{
		Log:        logger,
		RoomName:   roomName,
		Resolver:   resolver.New(logger),
		Composer:   instructions.NewComposer(),
		Transcript: transcript,
		Sinks:      sinks,
		Engine:     engine,
		Prompts:    prompts,
		PromptIDs:  instructions.DefaultSettings(),
		BufferSize: 8,
	})
}

func mockRoom(ctrl *gomock.Controller, metadata string) *mocks.MockRoom {
	participant := mocks.NewMockRemoteParticipant(ctrl)
	participant.EXPECT().Metadata().Return(metadata).AnyTimes()
	participant.EXPECT().Identity().Return("student").AnyTimes()

	room := mocks.NewMockRoom(ctrl)
	room.EXPECT().RemoteParticipants().Return([]contract.RemoteParticipant{participant}).AnyTimes()
	room.EXPECT().Name().Return(roomName).AnyTimes()
	return room
}

func TestSessionController_Binding(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Participant connected binds, applies instructions and greets", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		c := newController(engine, prompts, nil)

		prompts.EXPECT().
			GetPrompt(gomock.Any(), "kai_voice_call_prompt_b_and_c").
			Return("Teach {{name}}, {{cefr_level}} level, native {{native_language}}.", nil).
			Times(1)
		engine.EXPECT().
			UpdateInstructions(gomock.Any(), "Teach Lena, B1 level, native german.").
			Return(nil).
			Times(1)

		greeted := make(chan string, 1)
		engine.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, instructions string) error {
				greeted <- instructions
				return nil
			}).Times(1)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = c.Run(ctx) }()

		c.AttachRoom(mockRoom(ctrl, `{"id":7,"name":"Lena","cefr_level":"B1","native_language":"german"}`))
		c.Dispatch(event.ParticipantConnected{RoomName: roomName})

		select {
		case greeting := <-greeted:
			req.Equal("Student name is Lena, their CEFR level is B1, their native language is german", greeting)
		case <-time.After(time.Second):
			req.Fail("Binding should have produced a greeting")
		}
	})

	t.Run("Beginner levels select the A template", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		c := newController(engine, prompts, nil)

		applied := make(chan struct{}, 1)
		prompts.EXPECT().
			GetPrompt(gomock.Any(), "kai_voice_call_prompt_a").
			Return("Go slow.", nil).
			Times(1)
		engine.EXPECT().UpdateInstructions(gomock.Any(), "Go slow.").Return(nil).Times(1)
		engine.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string) error {
				applied <- struct{}{}
				return nil
			}).Times(1)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = c.Run(ctx) }()

		c.AttachRoom(mockRoom(ctrl, `{"id":8,"name":"Marco","cefr_level":"A1","native_language":"italian"}`))
		c.Dispatch(event.ParticipantConnected{RoomName: roomName})

		select {
		case <-applied:
		case <-time.After(time.Second):
			req.Fail("Binding should have completed")
		}
	})

	t.Run("Absent profile fields greet with the unknown placeholder", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		c := newController(engine, prompts, nil)

		prompts.EXPECT().
			GetPrompt(gomock.Any(), "kai_voice_call_prompt_b_and_c").
			Return("Base.", nil).
			Times(1)
		engine.EXPECT().UpdateInstructions(gomock.Any(), "Base.").Return(nil).Times(1)

		greeted := make(chan string, 1)
		engine.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, instructions string) error {
				greeted <- instructions
				return nil
			}).Times(1)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = c.Run(ctx) }()

		c.AttachRoom(mockRoom(ctrl, `{"id":3}`))
		c.Dispatch(event.ParticipantConnected{RoomName: roomName})

		select {
		case greeting := <-greeted:
			req.Equal("Student name is <UNKNOWN>, their CEFR level is <UNKNOWN>, their native language is <UNKNOWN>", greeting)
		case <-time.After(time.Second):
			req.Fail("Binding should have produced a greeting")
		}
	})

	t.Run("Prompt store failure keeps current instructions but still greets", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		c := newController(engine, prompts, nil)

		prompts.EXPECT().
			GetPrompt(gomock.Any(), gomock.Any()).
			Return("", context.DeadlineExceeded).
			Times(1)

		greeted := make(chan struct{}, 1)
		engine.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string) error {
				greeted <- struct{}{}
				return nil
			}).Times(1)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = c.Run(ctx) }()

		c.AttachRoom(mockRoom(ctrl, `{"id":7,"name":"Lena"}`))
		c.Dispatch(event.ParticipantConnected{RoomName: roomName})

		select {
		case <-greeted:
		case <-time.After(time.Second):
			req.Fail("Greeting should not depend on the prompt store")
		}
	})
}

func TestSessionController_EventLoop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Conversation items are forwarded to every sink", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		extra := mocks.NewMockEventSink(ctrl)
		c := newController(engine, prompts, nil, extra)

		consumed := make(chan event.SessionEvent, 1)
		extra.EXPECT().
			Consume(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e event.SessionEvent) error {
				consumed <- e
				return nil
			}).Times(1)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = c.Run(ctx) }()

		item := event.ConversationItemAdded{RoomName: roomName, Role: "user", Content: []string{"hi"}}
		c.Dispatch(item)

		select {
		case e := <-consumed:
			req.Equal(item, e)
		case <-time.After(time.Second):
			req.Fail("Sink should have received the conversation item")
		}
	})

	t.Run("Session close flushes sinks, closes the engine and ends the loop", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)

		analysis := mocks.NewMockAnalysisClient(ctrl)
		transcript := sink.NewTranscriptSink(analysis, discardLogger(), 42, 10)
		transcript.Bind(&domain.Participant{ID: 7, Name: "Lena", CEFRLevel: domain.LevelB1})

		analysis.EXPECT().
			Analyze(gomock.Any(), 42, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, messages []domain.TranscriptMessage) error {
				req.Len(messages, 1)
				return nil
			}).Times(1)

		c := newController(engine, prompts, transcript)
		engine.EXPECT().Close().Return(nil).Times(1)

		go func() { _ = c.Run(context.Background()) }()

		c.Dispatch(event.ConversationItemAdded{RoomName: roomName, Role: "user", Content: []string{"bye"}})
		c.Dispatch(event.SessionClosed{RoomName: roomName})

		select {
		case <-c.Done():
		case <-time.After(time.Second):
			req.Fail("Loop should end after session close")
		}
		req.Equal(0, transcript.Len())
	})
}

func TestSessionController_AdjustSpeed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("Slow preset adds the modifier and lowers the engine factor", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		c := newController(engine, prompts, nil)

		engine.EXPECT().
			UpdateInstructions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, text string) error {
				req.True(strings.Contains(text, "Speak slowly"))
				return nil
			}).Times(1)
		engine.EXPECT().
			SetSpeed(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, factor float64) error {
				req.InDelta(0.85, factor, 0.0001)
				return nil
			}).Times(1)

		req.NoError(c.AdjustSpeed(ctx, "slow"))
	})

	t.Run("Normal preset removes the modifier and restores the factor", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		c := newController(engine, prompts, nil)

		engine.EXPECT().UpdateInstructions(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		engine.EXPECT().SetSpeed(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		engine.EXPECT().
			SetSpeed(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, factor float64) error {
				req.InDelta(1.0, factor, 0.0001)
				return nil
			}).Times(1)

		req.NoError(c.AdjustSpeed(ctx, "slow"))
		req.NoError(c.AdjustSpeed(ctx, "NORMAL "))
	})

	t.Run("Unknown preset is rejected without touching the engine", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		c := newController(engine, prompts, nil)

		err := c.AdjustSpeed(ctx, "fast")
		req.ErrorIs(err, errors.ErrUnknownSpeedPreset)
	})

	t.Run("Engine failures are absorbed", func(t *testing.T) {
		engine := mocks.NewMockTurnEngine(ctrl)
		prompts := mocks.NewMockPromptStore(ctrl)
		c := newController(engine, prompts, nil)

		engine.EXPECT().UpdateInstructions(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded).Times(1)
		engine.EXPECT().SetSpeed(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded).Times(1)

		req.NoError(c.AdjustSpeed(ctx, "slow"))
	})
}

func TestSessionController_HandleSpeedRPC(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	engine := mocks.NewMockTurnEngine(ctrl)
	prompts := mocks.NewMockPromptStore(ctrl)
	engine.EXPECT().UpdateInstructions(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	engine.EXPECT().SetSpeed(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	c := newController(engine, prompts, nil)

	t.Run("Valid preset acknowledges", func(t *testing.T) {
		resp, err := c.HandleSpeedRPC(ctx, `{"preset":"slow"}`)
		req.NoError(err)
		req.Equal("ok", resp)
	})

	t.Run("Unknown preset is reported in the response payload", func(t *testing.T) {
		resp, err := c.HandleSpeedRPC(ctx, `{"preset":"fast"}`)
		req.NoError(err)
		req.Contains(resp, "unknown voice speed preset")
	})

	t.Run("Malformed payload is reported in the response payload", func(t *testing.T) {
		resp, err := c.HandleSpeedRPC(ctx, `{nope`)
		req.NoError(err)
		req.Contains(resp, "invalid payload")
	})
}
