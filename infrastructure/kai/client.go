// Package kai is the HTTP client for the Kai backend's voice-call
// analysis endpoint.
package kai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/samber/lo"

	"kai-agent/domain"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
	log       *slog.Logger
}

func NewClient(baseURL, secretKey string, log *slog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      &http.Client{Timeout: defaultTimeout},
		log:       log,
	}
}

type analyzeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type analyzeRequest struct {
	Messages []analyzeMessage `json:"messages"`
}

// Analyze posts one transcript batch. A non-2xx status is an error; the
// caller decides whether to retry (it doesn't — delivery is at-most-once).
func (c *Client) Analyze(ctx context.Context, voiceCallID int, messages []domain.TranscriptMessage) error {
	payload := analyzeRequest{
		Messages: lo.Map(messages, func(m domain.TranscriptMessage, _ int) analyzeMessage {
			return analyzeMessage{Role: string(m.Role), Content: m.Content}
		}),
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("kai: marshal analyze request: %w", err)
	}

	url := fmt.Sprintf("%s/kai/voice-call/%d/analyze/", c.baseURL, voiceCallID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("kai: build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("kai: analyze voice call %d: %w", voiceCallID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("kai: analyze voice call %d returned %s", voiceCallID, resp.Status)
	}
	return nil
}
