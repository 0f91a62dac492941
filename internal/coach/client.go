// ABOUTME: HTTP client for the coach chat backend.
// ABOUTME: Plain JSON POST; a canned fallback keeps the chat usable offline.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultBaseURL is where the coach backend listens out of the box.
const DefaultBaseURL = "http://127.0.0.1:8000"

// FallbackReply is shown when the backend cannot be reached.
const FallbackReply = "I'm having trouble connecting to my neural network. Check the backend connection."

// Client talks to the coach chat endpoint.
type Client struct {
	baseURL string
	hc      *http.Client
	log     *log.Logger
}

// NewClient creates a coach client. An empty baseURL means DefaultBaseURL;
// a nil logger discards diagnostics.
func NewClient(baseURL string, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 30 * time.Second},
		log:     logger,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Ask sends a message to the coach and returns its reply.
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("coach request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("coach returned %s", resp.Status)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return out.Reply, nil
}

// AskWithFallback is Ask, but backend failures degrade to FallbackReply
// instead of an error.
func (c *Client) AskWithFallback(ctx context.Context, message string) string {
	reply, err := c.Ask(ctx, message)
	if err != nil {
		c.log.Warn("coach unreachable", "err", err)
		return FallbackReply
	}
	return reply
}
