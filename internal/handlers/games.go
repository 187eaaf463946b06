package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/Student4344/social-minds0/internal/games"
)

type GamesHandler struct {
	db *sqlx.DB
}

func NewGamesHandler(db *sqlx.DB) *GamesHandler { return &GamesHandler{db: db} }

type rewardRequest struct {
	Game       string `json:"game"`
	Difficulty int    `json:"difficulty,omitempty"`
	Taps       int    `json:"taps,omitempty"`
	Count      int    `json:"count,omitempty"`
	Score      int    `json:"score,omitempty"`
}

type rewardResponse struct {
	Awarded int `json:"awarded"`
	XP      int `json:"xp"`
	Level   int `json:"level"`
}

// Reward godoc
// @Summary Award experience for a finished game round
// @Description Computes the game's reward server-side and applies it as a single atomic increment, so concurrent rounds never lose an update
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param outcome body rewardRequest true "Game outcome"
// @Success 200 {object} rewardResponse
// @Failure 400 {string} string "Bad request"
// @Router /games/reward [post]
func (h *GamesHandler) Reward(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req rewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	amount, err := games.Reward(req.Game, games.Outcome{
		Difficulty: req.Difficulty,
		Taps:       req.Taps,
		Count:      req.Count,
		Score:      req.Score,
	})
	if err != nil {
		if errors.Is(err, games.ErrUnknownGame) {
			http.Error(w, "unknown game", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp rewardResponse
	resp.Awarded = amount
	// Single atomic increment; level stays floor(xp/100)+1 even under
	// concurrent rewards.
	err = h.db.QueryRowx(`UPDATE profiles
	                       SET xp = xp + $2, level = (xp + $2) / 100 + 1, updated_at = NOW()
	                       WHERE user_id = $1
	                       RETURNING xp, level`, userID, amount).Scan(&resp.XP, &resp.Level)
	if err != nil {
		http.Error(w, "could not award xp", http.StatusInternalServerError)
		return
	}
	if amount > 0 {
		_ = awardBadge(h.db, userID, badgeGameChampion)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
