package handlers

import "github.com/jmoiron/sqlx"

// Badge names awarded by the backend.
const (
	badgeFirstLogin   = "First Login"
	badgeJournal      = "Journal Writer"
	badgeGameChampion = "Game Champion"
	badgeWeekStreak   = "7-Day Streak"
)

// awardBadge appends a badge to the profile's badge set if not already held.
func awardBadge(db *sqlx.DB, userID int, badge string) error {
	_, err := db.Exec(`UPDATE profiles SET badges = badges || to_jsonb($2::text), updated_at = NOW()
	                    WHERE user_id = $1 AND NOT jsonb_exists(badges, $2)`, userID, badge)
	return err
}
