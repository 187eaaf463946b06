package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Student4344/social-minds0/internal/llm"
)

type ChatHandler struct {
	client *llm.Client
	logger *zap.Logger
}

func NewChatHandler(client *llm.Client, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{client: client, logger: logger}
}

type chatRequest struct {
	Messages []llm.Message `json:"messages"`
}

// Stream relays the transcript to the inference endpoint and re-streams the
// assistant's reply as line-framed events. Fragments already written to the
// client stay written if the upstream fails mid-stream.
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		http.Error(w, "messages required", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	started := false
	start := func() {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		started = true
	}

	err := h.client.StreamChat(r.Context(), req.Messages, func(delta string) error {
		if !started {
			start()
		}
		payload, err := json.Marshal(map[string]any{
			"choices": []map[string]any{{"delta": map[string]string{"content": delta}}},
		})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		if !started {
			switch {
			case errors.Is(err, llm.ErrRateLimited):
				http.Error(w, "Too many requests. Please wait a moment.", http.StatusTooManyRequests)
			case errors.Is(err, llm.ErrQuotaExhausted):
				http.Error(w, "AI credits depleted.", http.StatusPaymentRequired)
			default:
				h.logger.Error("chat stream failed", zap.Error(err))
				http.Error(w, "Failed to get response. Please try again.", http.StatusBadGateway)
			}
			return
		}
		// Headers already sent: log and end the stream; partial output
		// stays with the client.
		h.logger.Error("chat stream interrupted", zap.Error(err))
	}
	if !started {
		start()
	}
	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}
