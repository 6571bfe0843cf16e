package evalstore_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kai-agent/infrastructure/evalstore"
)

func TestClient_Upload(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	writeArtifact := func(t *testing.T) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "voice-call-42.jsonl")
		require.NoError(t, os.WriteFile(path, []byte(`{"role":"student","content":"hi"}`+"\n"), 0o644))
		return path
	}

	t.Run("Uploads the artifact as a multipart form", func(t *testing.T) {
		path := writeArtifact(t)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req.Equal("/transcripts/", r.URL.Path)
			req.Equal("ApiKey eval-key", r.Header.Get("Authorization"))

			file, header, err := r.FormFile("file")
			req.NoError(err)
			defer file.Close()
			req.Equal("voice-call-42.jsonl", header.Filename)

			content, err := io.ReadAll(file)
			req.NoError(err)
			req.Contains(string(content), `"role":"student"`)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := evalstore.NewClient(srv.URL, "eval-key", logger)
		req.NoError(c.Upload(ctx, path))

		// The caller owns the file; Upload never removes it.
		_, err := os.Stat(path)
		req.NoError(err)
	})

	t.Run("Non 2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		c := evalstore.NewClient(srv.URL, "eval-key", logger)
		req.Error(c.Upload(ctx, writeArtifact(t)))
	})

	t.Run("Missing artifact is an error", func(t *testing.T) {
		c := evalstore.NewClient("http://127.0.0.1:1", "eval-key", logger)
		req.Error(c.Upload(ctx, filepath.Join(t.TempDir(), "absent.jsonl")))
	})
}
