package avatar_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kai-agent/avatar"
	"kai-agent/contract"
	"kai-agent/mocks"
)

func TestManager_Start(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	serverURL := "wss://media.example.test"

	registryWith := func(provider contract.AvatarProvider) *avatar.Registry {
		r := avatar.NewRegistry()
		r.Register(avatar.ProviderBeyondPresence, func(avatar.Config, avatar.Deps) contract.AvatarProvider {
			return provider
		})
		return r
	}

	enabledConfig := func() *avatar.Config {
		return &avatar.Config{Provider: avatar.ProviderBeyondPresence, Enabled: true, BeyAvatarID: "av-1"}
	}

	t.Run("Successful start activates the provider", func(t *testing.T) {
		provider := mocks.NewMockAvatarProvider(ctrl)
		provider.EXPECT().CreateSession(gomock.Any()).Return(nil).Times(1)
		provider.EXPECT().Start(gomock.Any(), serverURL, gomock.Any()).Return(nil).Times(1)
		provider.EXPECT().Active().Return(true).AnyTimes()

		m := avatar.NewManager(enabledConfig(), registryWith(provider), avatar.Deps{Log: logger}, logger)
		m.Start(ctx, serverURL, nil)
		req.True(m.Active())
	})

	t.Run("Nil config runs without avatar", func(t *testing.T) {
		m := avatar.NewManager(nil, avatar.NewRegistry(), avatar.Deps{Log: logger}, logger)
		m.Start(ctx, serverURL, nil)
		req.False(m.Active())
	})

	t.Run("Disabled avatar is skipped", func(t *testing.T) {
		cfg := enabledConfig()
		cfg.Enabled = false

		provider := mocks.NewMockAvatarProvider(ctrl)
		m := avatar.NewManager(cfg, registryWith(provider), avatar.Deps{Log: logger}, logger)
		m.Start(ctx, serverURL, nil)
		req.False(m.Active())
	})

	t.Run("Unregistered provider never fails the session", func(t *testing.T) {
		cfg := &avatar.Config{Provider: avatar.ProviderTavus, Enabled: true}
		m := avatar.NewManager(cfg, avatar.DefaultRegistry(), avatar.Deps{Log: logger}, logger)
		m.Start(ctx, serverURL, nil)
		req.False(m.Active())
	})

	t.Run("CreateSession failure leaves no active avatar", func(t *testing.T) {
		provider := mocks.NewMockAvatarProvider(ctrl)
		provider.EXPECT().CreateSession(gomock.Any()).Return(context.DeadlineExceeded).Times(1)

		m := avatar.NewManager(enabledConfig(), registryWith(provider), avatar.Deps{Log: logger}, logger)
		m.Start(ctx, serverURL, nil)
		req.False(m.Active())
	})

	t.Run("Start failure leaves no active avatar", func(t *testing.T) {
		provider := mocks.NewMockAvatarProvider(ctrl)
		provider.EXPECT().CreateSession(gomock.Any()).Return(nil).Times(1)
		provider.EXPECT().Start(gomock.Any(), serverURL, gomock.Any()).Return(context.DeadlineExceeded).Times(1)

		m := avatar.NewManager(enabledConfig(), registryWith(provider), avatar.Deps{Log: logger}, logger)
		m.Start(ctx, serverURL, nil)
		req.False(m.Active())
	})

	t.Run("Stop tears down the active provider once", func(t *testing.T) {
		provider := mocks.NewMockAvatarProvider(ctrl)
		provider.EXPECT().CreateSession(gomock.Any()).Return(nil).Times(1)
		provider.EXPECT().Start(gomock.Any(), serverURL, gomock.Any()).Return(nil).Times(1)
		provider.EXPECT().Stop(gomock.Any()).Return(nil).Times(1)

		m := avatar.NewManager(enabledConfig(), registryWith(provider), avatar.Deps{Log: logger}, logger)
		m.Start(ctx, serverURL, nil)
		m.Stop(ctx)
		req.False(m.Active())

		// Second stop is a no-op
		m.Stop(ctx)
	})
}
