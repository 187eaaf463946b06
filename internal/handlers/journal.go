package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Student4344/social-minds0/internal/models"
	"github.com/Student4344/social-minds0/internal/services"
)

type JournalHandler struct {
	db     *sqlx.DB
	encSvc *services.EncryptionService
}

func NewJournalHandler(db *sqlx.DB, encSvc *services.EncryptionService) *JournalHandler {
	return &JournalHandler{db: db, encSvc: encSvc}
}

type journalRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create appends a journal entry. Entries are append-only; there is no edit.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req journalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		http.Error(w, "content required", http.StatusBadRequest)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		req.Title = "Untitled"
	}

	entry := models.JournalEntry{UserID: userID, Title: req.Title, Content: req.Content}
	if err := h.encSvc.EncryptJournal(&entry); err != nil {
		http.Error(w, "could not encrypt entry", http.StatusInternalServerError)
		return
	}

	var id uuid.UUID
	var createdAt time.Time
	err := h.db.QueryRowx(`INSERT INTO journal_entries (user_id, title, content)
	                        VALUES ($1, $2, $3) RETURNING id, created_at`,
		userID, entry.Title, entry.Content).Scan(&id, &createdAt)
	if err != nil {
		http.Error(w, "could not save", http.StatusInternalServerError)
		return
	}
	_ = awardBadge(h.db, userID, badgeJournal)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"id": id, "created_at": createdAt.Format(time.RFC3339)})
}

type journalEntryDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"created_at"`
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	rows, err := h.db.Queryx(`SELECT id, user_id, title, content, created_at FROM journal_entries
	                           WHERE user_id=$1 ORDER BY created_at DESC LIMIT 100`, userID)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	out := []journalEntryDTO{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.StructScan(&e); err != nil {
			continue
		}
		if err := h.encSvc.DecryptJournal(&e); err != nil {
			continue
		}
		out = append(out, journalEntryDTO{
			ID:        e.ID,
			Title:     e.Title,
			Content:   e.Content,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
