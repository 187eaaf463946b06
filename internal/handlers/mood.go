package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Student4344/social-minds0/internal/mood"
)

type MoodHandler struct {
	db *sqlx.DB
}

func NewMoodHandler(db *sqlx.DB) *MoodHandler { return &MoodHandler{db: db} }

type moodRequest struct {
	Mood int `json:"mood"`
}

// Log appends a mood check-in. One row per check-in, never updated.
func (h *MoodHandler) Log(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Mood < 1 || req.Mood > 7 {
		http.Error(w, "mood must be between 1 and 7", http.StatusBadRequest)
		return
	}
	if _, err := h.db.Exec(`INSERT INTO mood_logs (user_id, mood) VALUES ($1, $2)`, userID, req.Mood); err != nil {
		http.Error(w, "could not save mood", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type weekResponse struct {
	WeekStart string `json:"week_start"`
	Days      [7]int `json:"days"` // Mon..Sun, 0 = no log
}

// Week returns the current week's Mon..Sun moods, most recent check-in per
// day winning.
func (h *MoodHandler) Week(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	monday := mood.WeekStart(time.Now())
	weekEnd := monday.AddDate(0, 0, 7)

	rows, err := h.db.Queryx(`SELECT mood, created_at FROM mood_logs
	                           WHERE user_id=$1 AND created_at >= $2 AND created_at < $3
	                           ORDER BY created_at DESC`, userID, monday, weekEnd)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var entries []mood.Entry
	for rows.Next() {
		var m int
		var at time.Time
		if err := rows.Scan(&m, &at); err == nil {
			entries = append(entries, mood.Entry{Mood: m, CreatedAt: at})
		}
	}

	resp := weekResponse{WeekStart: monday.Format("2006-01-02"), Days: mood.BucketWeek(entries)}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
