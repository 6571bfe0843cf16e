package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"kai-agent/avatar"
	"kai-agent/contract"
	"kai-agent/domain"
	"kai-agent/domain/event"
	"kai-agent/engine/openai"
	"kai-agent/infrastructure/evalstore"
	"kai-agent/infrastructure/kai"
	"kai-agent/infrastructure/promptstore"
	"kai-agent/instructions"
	"kai-agent/internal"
	"kai-agent/resolver"
	"kai-agent/runtime"
	"kai-agent/services"
	"kai-agent/sink"
	"kai-agent/transport/livekit"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// flushGrace bounds how long shutdown waits for the final transcript
// flush before stopping the workers anyway.
const flushGrace = 5 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Agent terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Workers run under their own context so a shutdown signal does not
	// kill the event loop before the final transcript flush; the signal
	// path closes the session instead and the loop drains on its own.
	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	voiceCallID, err := domain.VoiceCallID(config.RoomName)
	if err != nil {
		return exitConfig, fmt.Errorf("room name must carry the voice call id: %w", err)
	}

	promptIDs := instructions.DefaultSettings()
	if config.PromptConfigPath != "" {
		if promptIDs, err = instructions.LoadSettings(config.PromptConfigPath); err != nil {
			logger.Warn("Prompt settings invalid, using defaults", "path", config.PromptConfigPath, "error", err)
		}
	}

	avatarLoader := avatar.NewLoader(config.AvatarConfigPath, logger)
	avatarCfg, err := avatarLoader.Get(config.AvatarName)
	if err != nil {
		logger.Warn("Avatar config unavailable, continuing voice-only", "name", config.AvatarName, "error", err)
		avatarCfg = nil
	}
	avatarDeps := avatar.Deps{
		Log:        logger,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BeyAPIKey:  config.BeyAPIKey,
		AnamAPIKey: config.AnamAPIKey,
	}
	avatars := avatar.NewManager(avatarCfg, avatar.DefaultRegistry(), avatarDeps, logger)

	analysis := kai.NewClient(config.KaiAPIBaseURL, config.KaiSecretKey, logger)
	prompts := promptstore.NewClient(config.LangfuseHost, config.LangfusePublicKey, config.LangfuseSecretKey, logger)

	engine := openai.New(openai.Config{
		APIKey: config.OpenAIAPIKey,
		Model:  config.RealtimeModel,
		Voice:  config.RealtimeVoice,
		Log:    logger,
	})

	registry := runtime.NewRegistry()
	supervisor := runtime.NewSupervisor(logger)

	factory := func(ctx context.Context, roomName string) (*runtime.SessionController, error) {
		transcript := sink.NewTranscriptSink(analysis, logger, voiceCallID, config.FlushThreshold)

		var extraSinks []contract.EventSink
		if config.TranscriptExportEnabled {
			uploader := evalstore.NewClient(config.EvalStoreURL, config.EvalStoreAPIKey, logger)
			extraSinks = append(extraSinks, sink.NewExportSink(uploader, logger, config.TranscriptExportDir, roomName))
		}

		controller := runtime.NewSessionController(runtime.ControllerDeps{
			Log:        logger,
			RoomName:   roomName,
			ServerURL:  config.LiveKitURL,
			Resolver:   resolver.New(logger),
			Composer:   instructions.NewComposer(),
			Transcript: transcript,
			Sinks:      extraSinks,
			Avatars:    avatars,
			Engine:     engine,
			Prompts:    prompts,
			PromptIDs:  promptIDs,
			BufferSize: config.EventBufferSize,
		})

		engine.OnConversationItem(func(role string, content []string) {
			controller.Dispatch(event.ConversationItemAdded{RoomName: roomName, Role: role, Content: content})
		})

		room, err := livekit.Connect(ctx, livekit.Config{
			URL:       config.LiveKitURL,
			APIKey:    config.LiveKitAPIKey,
			APISecret: config.LiveKitAPISecret,
			RoomName:  roomName,
			Identity:  config.AgentIdentity,
			Log:       logger,
		}, livekit.Handlers{
			OnParticipantConnected: func(identity string) {
				controller.Dispatch(event.ParticipantConnected{RoomName: roomName})
			},
			OnParticipantDisconnected: func(identity string) {
				controller.Dispatch(event.ParticipantDisconnected{RoomName: roomName, Identity: identity})
			},
			OnSpeedRequest: controller.HandleSpeedRPC,
		})
		if err != nil {
			return nil, err
		}
		controller.AttachRoom(room)
		return controller, nil
	}

	sessions := services.NewSessionService(logger, registry, supervisor, factory)

	controller, err := sessions.StartSession(runCtx, config.RoomName)
	if err != nil {
		return exitRuntime, fmt.Errorf("session start failed: %w", err)
	}

	go func() {
		select {
		case <-ctx.Done():
			logger.Info("Shutdown signal received, closing session")
			sessions.StopSession(config.RoomName)
		case <-controller.Done():
		}
		select {
		case <-controller.Done():
		case <-time.After(flushGrace):
			logger.Warn("Session did not drain in time")
		}
		supervisor.Stop()
		cancelRun()
	}()

	// The realtime socket runs supervised so a dropped connection is
	// redialed with the recorded instructions replayed.
	supervisor.Add(engine)
	supervisor.Run(runCtx)

	logger.Info("Agent stopped")
	return exitOK, nil
}
