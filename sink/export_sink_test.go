package sink_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kai-agent/domain/event"
	"kai-agent/mocks"
	"kai-agent/sink"
)

func TestExportSink_Consume(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	type line struct {
		Role     string `json:"role"`
		Content  string `json:"content"`
		Language string `json:"language"`
	}

	t.Run("Session close writes, uploads and removes the artifact", func(t *testing.T) {
		uploader := mocks.NewMockTranscriptUploader(ctrl)
		dir := t.TempDir()
		s := sink.NewExportSink(uploader, logger, dir, roomName)

		var uploadedPath string
		uploader.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, path string) error {
				uploadedPath = path
				data, err := os.ReadFile(path)
				req.NoError(err)

				rows := strings.Split(strings.TrimSpace(string(data)), "\n")
				req.Len(rows, 2)

				var first, second line
				req.NoError(sonic.Unmarshal([]byte(rows[0]), &first))
				req.NoError(sonic.Unmarshal([]byte(rows[1]), &second))
				req.Equal("student", first.Role)
				req.Equal("hello there, how are you today", first.Content)
				req.Equal("kai", second.Role)
				return nil
			}).Times(1)

		req.NoError(s.Consume(ctx, event.ConversationItemAdded{
			RoomName: roomName, Role: "user", Content: []string{"hello there, how are you today"},
		}))
		req.NoError(s.Consume(ctx, event.ConversationItemAdded{
			RoomName: roomName, Role: "assistant", Content: []string{"I am doing great"},
		}))
		req.NoError(s.Consume(ctx, event.SessionClosed{RoomName: roomName}))

		req.NotEmpty(uploadedPath)
		req.Contains(uploadedPath, "voice-call-"+roomName)
		_, err := os.Stat(uploadedPath)
		req.True(os.IsNotExist(err))
	})

	t.Run("Second teardown event exports nothing", func(t *testing.T) {
		uploader := mocks.NewMockTranscriptUploader(ctrl)
		s := sink.NewExportSink(uploader, logger, t.TempDir(), roomName)

		uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		req.NoError(s.Consume(ctx, event.ConversationItemAdded{
			RoomName: roomName, Role: "user", Content: []string{"only once"},
		}))
		req.NoError(s.Consume(ctx, event.ParticipantDisconnected{RoomName: roomName, Identity: "student"}))
		req.NoError(s.Consume(ctx, event.SessionClosed{RoomName: roomName}))
	})

	t.Run("Upload failure still removes the local file", func(t *testing.T) {
		uploader := mocks.NewMockTranscriptUploader(ctrl)
		dir := t.TempDir()
		s := sink.NewExportSink(uploader, logger, dir, roomName)

		var uploadedPath string
		uploader.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, path string) error {
				uploadedPath = path
				return context.DeadlineExceeded
			}).Times(1)

		req.NoError(s.Consume(ctx, event.ConversationItemAdded{
			RoomName: roomName, Role: "user", Content: []string{"doomed"},
		}))
		req.NoError(s.Consume(ctx, event.SessionClosed{RoomName: roomName}))

		_, err := os.Stat(uploadedPath)
		req.True(os.IsNotExist(err))
	})

	t.Run("Non conversation roles are ignored", func(t *testing.T) {
		uploader := mocks.NewMockTranscriptUploader(ctrl)
		s := sink.NewExportSink(uploader, logger, t.TempDir(), roomName)

		req.NoError(s.Consume(ctx, event.ConversationItemAdded{
			RoomName: roomName, Role: "system", Content: []string{"boot"},
		}))
		req.NoError(s.Consume(ctx, event.SessionClosed{RoomName: roomName}))
	})
}
