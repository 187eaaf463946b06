package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors the relay maps back onto the status codes the upstream
// endpoint uses for rate and quota exhaustion.
var (
	ErrRateLimited    = errors.New("upstream rate limit exceeded")
	ErrQuotaExhausted = errors.New("upstream credits depleted")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to the hosted inference endpoints: the streaming chat
// completion endpoint and the voice transcription endpoint.
type Client struct {
	httpClient    *http.Client
	chatURL       string
	transcribeURL string
	apiKey        string
}

func NewClient(chatURL, transcribeURL, apiKey string) *Client {
	return &Client{
		httpClient:    &http.Client{},
		chatURL:       chatURL,
		transcribeURL: transcribeURL,
		apiKey:        apiKey,
	}
}

// StreamChat posts the full transcript and invokes onDelta for every
// incremental text fragment until the stream completes or fails. Fragments
// already delivered are never rolled back on error.
func (c *Client) StreamChat(ctx context.Context, messages []Message, onDelta func(string) error) error {
	body, err := json.Marshal(map[string]any{"messages": messages})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chatURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return ErrQuotaExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("chat stream failed: status %d", resp.StatusCode)
	}

	parser := NewStreamParser()
	chunk := make([]byte, 4096)
	for !parser.Done() {
		n, readErr := resp.Body.Read(chunk)
		if n > 0 {
			for _, delta := range parser.Feed(chunk[:n]) {
				if err := onDelta(delta); err != nil {
					return err
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}
	return nil
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe posts a base64-encoded audio blob and returns the recognized
// text, which may be empty when nothing was understood.
func (c *Client) Transcribe(ctx context.Context, audioBase64 string) (string, error) {
	body, err := json.Marshal(map[string]string{"audio": audioBase64})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.transcribeURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("transcription failed: status %d", resp.StatusCode)
	}

	var out transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}
