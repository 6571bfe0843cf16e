package sink

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/abadojack/whatlanggo"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"kai-agent/contract"
	"kai-agent/domain"
	"kai-agent/domain/event"
)

// exportLine is one transcript row in the JSONL artifact. Student lines
// carry the detected language so reviewers can spot native-language
// fallbacks without listening to the call.
type exportLine struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

// ExportSink accumulates the full conversation and, when the participant
// leaves, writes it to a line-delimited JSON artifact, uploads it to the
// evaluation store, and removes the local file. Upload failures are
// logged and swallowed; this is a debug path and must never disturb the
// session.
type ExportSink struct {
	mu       sync.Mutex
	uploader contract.TranscriptUploader
	log      *slog.Logger
	dir      string
	roomName string
	lines    []exportLine
}

func NewExportSink(uploader contract.TranscriptUploader, log *slog.Logger, dir, roomName string) *ExportSink {
	if dir == "" {
		dir = os.TempDir()
	}
	return &ExportSink{
		uploader: uploader,
		log:      log,
		dir:      dir,
		roomName: roomName,
	}
}

func (s *ExportSink) Consume(ctx context.Context, e event.SessionEvent) error {
	switch evt := e.(type) {
	case event.ConversationItemAdded:
		s.record(evt)
	case event.ParticipantDisconnected, event.SessionClosed:
		s.export(ctx)
	}
	return nil
}

func (s *ExportSink) record(evt event.ConversationItemAdded) {
	role, ok := domain.RoleFromTurn(evt.Role)
	if !ok {
		return
	}
	line := exportLine{
		Role:    string(role),
		Content: strings.Join(evt.Content, "\n"),
	}
	if role == domain.RoleStudent {
		info := whatlanggo.Detect(line.Content)
		if info.IsReliable() {
			line.Language = info.Lang.Iso6391()
		}
	}

	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
}

// export writes, uploads, and deletes the artifact. The line buffer is
// cleared up front so a second teardown event exports nothing.
func (s *ExportSink) export(ctx context.Context) {
	s.mu.Lock()
	lines := s.lines
	s.lines = nil
	s.mu.Unlock()

	if len(lines) == 0 {
		return
	}

	path := filepath.Join(s.dir, fmt.Sprintf("voice-call-%s-%s.jsonl", s.roomName, uuid.New()))
	if err := writeArtifact(path, lines); err != nil {
		s.log.Error("Transcript artifact write failed", "path", path, "error", err)
		return
	}

	if err := s.uploader.Upload(ctx, path); err != nil {
		s.log.Error("Transcript artifact upload failed", "path", path, "error", err)
	}

	if err := os.Remove(path); err != nil {
		s.log.Warn("Transcript artifact cleanup failed", "path", path, "error", err)
	}
}

func writeArtifact(path string, lines []exportLine) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, line := range lines {
		data, err := sonic.Marshal(line)
		if err != nil {
			return err
		}
		if _, err := f.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return f.Sync()
}
