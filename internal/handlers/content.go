package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Student4344/social-minds0/internal/content"
)

type ContentHandler struct{}

func NewContentHandler() *ContentHandler { return &ContentHandler{} }

func (h *ContentHandler) Learn(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content.LearnModules())
}

func (h *ContentHandler) Breathe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content.Exercises())
}
