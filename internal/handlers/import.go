package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Student4344/social-minds0/internal/models"
	"github.com/Student4344/social-minds0/internal/services"
)

// ImportHandler ingests history exported from the old on-device app: mood
// check-ins and journal entries with their original timestamps.
type ImportHandler struct {
	db     *sqlx.DB
	encSvc *services.EncryptionService
}

func NewImportHandler(db *sqlx.DB, encSvc *services.EncryptionService) *ImportHandler {
	return &ImportHandler{db: db, encSvc: encSvc}
}

type importedMood struct {
	Mood      int    `json:"mood"`
	CreatedAt string `json:"created_at"` // RFC 3339
}

type importedJournalEntry struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"` // RFC 3339
}

type importRequest struct {
	MoodLogs       []importedMood         `json:"mood_logs"`
	JournalEntries []importedJournalEntry `json:"journal_entries"`
}

// ImportData godoc
// @Summary Import device history
// @Description Inserts mood logs and journal entries carried over from the on-device app for the authenticated user
// @Tags import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body importRequest true "History to import"
// @Success 201 {object} map[string]interface{} "Import summary"
// @Failure 400 {string} string "Bad request"
// @Failure 500 {string} string "Internal server error"
// @Router /import [post]
func (h *ImportHandler) ImportData(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if len(req.MoodLogs) == 0 && len(req.JournalEntries) == 0 {
		http.Error(w, "nothing to import", http.StatusBadRequest)
		return
	}

	tx, err := h.db.Beginx()
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	defer tx.Rollback()

	moods := 0
	for _, m := range req.MoodLogs {
		if m.Mood < 1 || m.Mood > 7 {
			http.Error(w, "mood must be between 1 and 7", http.StatusBadRequest)
			return
		}
		at, err := time.Parse(time.RFC3339, m.CreatedAt)
		if err != nil {
			http.Error(w, "invalid created_at; expected RFC 3339", http.StatusBadRequest)
			return
		}
		if _, err := tx.Exec(`INSERT INTO mood_logs (user_id, mood, created_at) VALUES ($1, $2, $3)`,
			userID, m.Mood, at); err != nil {
			http.Error(w, "could not import mood logs", http.StatusInternalServerError)
			return
		}
		moods++
	}

	entries := 0
	for _, e := range req.JournalEntries {
		if strings.TrimSpace(e.Content) == "" {
			continue
		}
		at, err := time.Parse(time.RFC3339, e.CreatedAt)
		if err != nil {
			http.Error(w, "invalid created_at; expected RFC 3339", http.StatusBadRequest)
			return
		}
		title := strings.TrimSpace(e.Title)
		if title == "" {
			title = "Untitled"
		}
		entry := models.JournalEntry{UserID: userID, Title: title, Content: strings.TrimSpace(e.Content)}
		if err := h.encSvc.EncryptJournal(&entry); err != nil {
			http.Error(w, "could not encrypt entry", http.StatusInternalServerError)
			return
		}
		if _, err := tx.Exec(`INSERT INTO journal_entries (user_id, title, content, created_at)
		                       VALUES ($1, $2, $3, $4)`, userID, entry.Title, entry.Content, at); err != nil {
			http.Error(w, "could not import journal entries", http.StatusInternalServerError)
			return
		}
		entries++
	}

	if err := tx.Commit(); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"message":         "Data imported successfully",
		"mood_logs":       moods,
		"journal_entries": entries,
	})
}
