package promptstore_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"kai-agent/infrastructure/promptstore"
)

func TestClient_GetPrompt(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Fetches the prompt with basic auth", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req.Equal("/api/public/v2/prompts/kai_voice_call_prompt_a", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			req.True(ok)
			req.Equal("pk", user)
			req.Equal("sk", pass)
			_, _ = w.Write([]byte(`{"name":"kai_voice_call_prompt_a","prompt":"Teach {{name}}.","version":3}`))
		}))
		defer srv.Close()

		c := promptstore.NewClient(srv.URL, "pk", "sk", logger)
		prompt, err := c.GetPrompt(ctx, "kai_voice_call_prompt_a")
		req.NoError(err)
		req.Equal("Teach {{name}}.", prompt)
	})

	t.Run("Prompt names are path escaped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req.Equal("/api/public/v2/prompts/with%20space", r.URL.EscapedPath())
			_, _ = w.Write([]byte(`{"prompt":"ok"}`))
		}))
		defer srv.Close()

		c := promptstore.NewClient(srv.URL, "pk", "sk", logger)
		prompt, err := c.GetPrompt(ctx, "with space")
		req.NoError(err)
		req.Equal("ok", prompt)
	})

	t.Run("Missing prompt is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		c := promptstore.NewClient(srv.URL, "pk", "sk", logger)
		_, err := c.GetPrompt(ctx, "absent")
		req.Error(err)
		req.Contains(err.Error(), "404")
	})

	t.Run("Malformed response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{broken"))
		}))
		defer srv.Close()

		c := promptstore.NewClient(srv.URL, "pk", "sk", logger)
		_, err := c.GetPrompt(ctx, "broken")
		req.Error(err)
	})
}
