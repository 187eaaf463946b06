package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	validThemes    = map[string]bool{"dark": true, "light": true}
	validFontSizes = map[string]bool{"small": true, "medium": true, "large": true}
	validBgColors  = map[string]bool{
		"default": true, "midnight": true, "forest": true,
		"charcoal": true, "wine": true, "ocean": true,
	}
)

type SettingsHandler struct {
	db *sqlx.DB
}

func NewSettingsHandler(db *sqlx.DB) *SettingsHandler { return &SettingsHandler{db: db} }

type settingsDTO struct {
	Theme         string `json:"theme"`
	FontSize      string `json:"font_size"`
	BgColor       string `json:"bg_color"`
	HighContrast  bool   `json:"high_contrast"`
	Notifications bool   `json:"notifications"`
	AnonymousMode bool   `json:"anonymous_mode"`
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var s settingsDTO
	err := h.db.QueryRowx(`SELECT theme, font_size, bg_color, high_contrast, notifications, anonymous_mode
	                        FROM profiles WHERE user_id=$1`, userID).
		Scan(&s.Theme, &s.FontSize, &s.BgColor, &s.HighContrast, &s.Notifications, &s.AnonymousMode)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// Update applies a partial preferences update. Enumerated fields are
// validated before any write.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var body struct {
		Theme         *string `json:"theme"`
		FontSize      *string `json:"font_size"`
		BgColor       *string `json:"bg_color"`
		HighContrast  *bool   `json:"high_contrast"`
		Notifications *bool   `json:"notifications"`
		AnonymousMode *bool   `json:"anonymous_mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1
	add := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s=$%d", col, argIdx))
		args = append(args, val)
		argIdx++
	}
	if body.Theme != nil {
		if !validThemes[*body.Theme] {
			http.Error(w, "invalid theme", http.StatusBadRequest)
			return
		}
		add("theme", *body.Theme)
	}
	if body.FontSize != nil {
		if !validFontSizes[*body.FontSize] {
			http.Error(w, "invalid font_size", http.StatusBadRequest)
			return
		}
		add("font_size", *body.FontSize)
	}
	if body.BgColor != nil {
		if !validBgColors[*body.BgColor] {
			http.Error(w, "invalid bg_color", http.StatusBadRequest)
			return
		}
		add("bg_color", *body.BgColor)
	}
	if body.HighContrast != nil {
		add("high_contrast", *body.HighContrast)
	}
	if body.Notifications != nil {
		add("notifications", *body.Notifications)
	}
	if body.AnonymousMode != nil {
		add("anonymous_mode", *body.AnonymousMode)
	}
	if len(setClauses) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	query := "UPDATE profiles SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(", updated_at=NOW() WHERE user_id=$%d", argIdx)
	args = append(args, userID)
	if _, err := h.db.Exec(query, args...); err != nil {
		http.Error(w, "could not update", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
