package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Student4344/social-minds0/internal/llm"
)

type VoiceHandler struct {
	client *llm.Client
	logger *zap.Logger
}

func NewVoiceHandler(client *llm.Client, logger *zap.Logger) *VoiceHandler {
	return &VoiceHandler{client: client, logger: logger}
}

type transcribeRequest struct {
	Audio string `json:"audio"`
}

// Transcribe forwards a base64 audio blob to the transcription endpoint and
// returns the recognized text. Each failure cause maps to its own status.
func (h *VoiceHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Audio == "" {
		http.Error(w, "audio required", http.StatusBadRequest)
		return
	}
	if _, err := base64.StdEncoding.DecodeString(req.Audio); err != nil {
		http.Error(w, "invalid audio encoding", http.StatusBadRequest)
		return
	}

	text, err := h.client.Transcribe(r.Context(), req.Audio)
	if err != nil {
		h.logger.Error("transcription failed", zap.Error(err))
		http.Error(w, "Voice transcription failed. Try typing instead.", http.StatusBadGateway)
		return
	}
	if strings.TrimSpace(text) == "" {
		http.Error(w, "Couldn't understand audio. Try again.", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"text": strings.TrimSpace(text)})
}
