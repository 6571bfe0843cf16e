// Package promptstore fetches versioned prompt templates from the
// external prompt store (a Langfuse-compatible API).
package promptstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	host      string
	publicKey string
	secretKey string
	http      *http.Client
	log       *slog.Logger
}

func NewClient(host, publicKey, secretKey string, log *slog.Logger) *Client {
	return &Client{
		host:      strings.TrimRight(host, "/"),
		publicKey: publicKey,
		secretKey: secretKey,
		http:      &http.Client{Timeout: defaultTimeout},
		log:       log,
	}
}

type promptResponse struct {
	Name    string `json:"name"`
	Prompt  string `json:"prompt"`
	Version int    `json:"version"`
}

// GetPrompt fetches the current production version of a named text
// prompt and returns its raw template.
func (c *Client) GetPrompt(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/public/v2/prompts/%s", c.host, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("promptstore: build request for %q: %w", name, err)
	}
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("promptstore: fetch %q: %w", name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("promptstore: read %q: %w", name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("promptstore: fetch %q returned %s", name, resp.Status)
	}

	var prompt promptResponse
	if err := sonic.Unmarshal(data, &prompt); err != nil {
		return "", fmt.Errorf("promptstore: parse %q: %w", name, err)
	}

	c.log.Debug("Prompt fetched", "name", name, "version", prompt.Version)
	return prompt.Prompt, nil
}
