package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
)

type DashboardHandler struct {
	db *sqlx.DB
}

func NewDashboardHandler(db *sqlx.DB) *DashboardHandler { return &DashboardHandler{db: db} }

type dashboardResponse struct {
	XP           int  `json:"xp"`
	Level        int  `json:"level"`
	Streak       int  `json:"streak"`
	Badges       int  `json:"badges"`
	HasTodayMood bool `json:"has_today_mood"`
}

// Get powers the home screen stats bar: xp, level, the mood-log streak and
// whether today's check-in happened yet.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	var resp dashboardResponse
	if err := h.db.QueryRowx(`SELECT xp, level, jsonb_array_length(badges) FROM profiles WHERE user_id=$1`, userID).
		Scan(&resp.XP, &resp.Level, &resp.Badges); err != nil {
		http.Error(w, "could not fetch profile", http.StatusInternalServerError)
		return
	}

	if err := h.db.QueryRowx(`SELECT EXISTS (
	        SELECT 1 FROM mood_logs WHERE user_id=$1 AND created_at::date = CURRENT_DATE)`, userID).
		Scan(&resp.HasTodayMood); err != nil {
		http.Error(w, "could not check today's mood", http.StatusInternalServerError)
		return
	}

	// Consecutive days with a mood log, ending today.
	streakQuery := `
		WITH d AS (
			SELECT DISTINCT created_at::date AS day FROM mood_logs WHERE user_id=$1 AND created_at::date <= CURRENT_DATE
		), g AS (
			SELECT day, day - (ROW_NUMBER() OVER (ORDER BY day))::int AS grp FROM d
		), c AS (
			SELECT COUNT(*) AS cnt, MAX(day) AS maxd FROM g GROUP BY grp
		)
		SELECT COALESCE((SELECT cnt FROM c WHERE maxd = CURRENT_DATE), 0)`
	if err := h.db.QueryRowx(streakQuery, userID).Scan(&resp.Streak); err != nil {
		http.Error(w, "could not compute streak", http.StatusInternalServerError)
		return
	}
	// Keep the denormalized streak column in step with what we just showed.
	_, _ = h.db.Exec(`UPDATE profiles SET streak=$2 WHERE user_id=$1 AND streak<>$2`, userID, resp.Streak)
	if resp.Streak >= 7 {
		_ = awardBadge(h.db, userID, badgeWeekStreak)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
