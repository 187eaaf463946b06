package handlers

import (
	"encoding/json"
	"time"

	"github.com/Student4344/social-minds0/internal/models"
)

// ProfileDTO is the profile as screens consume it: badges as a list, dates as
// strings, secrets omitted.
type ProfileDTO struct {
	UserID           int      `json:"user_id"`
	Username         *string  `json:"username,omitempty"`
	DisplayName      *string  `json:"display_name,omitempty"`
	Bio              *string  `json:"bio,omitempty"`
	Title            string   `json:"title"`
	AvatarURL        *string  `json:"avatar_url,omitempty"`
	XP               int      `json:"xp"`
	Level            int      `json:"level"`
	Streak           int      `json:"streak"`
	Badges           []string `json:"badges"`
	Theme            string   `json:"theme"`
	FontSize         string   `json:"font_size"`
	BgColor          string   `json:"bg_color"`
	HighContrast     bool     `json:"high_contrast"`
	Notifications    bool     `json:"notifications"`
	AnonymousMode    bool     `json:"anonymous_mode"`
	AppLock          bool     `json:"app_lock"`
	BiometricEnabled bool     `json:"biometric_enabled"`
	CreatedAt        string   `json:"created_at"`
}

func ToProfileDTO(p models.Profile) ProfileDTO {
	var badges []string
	if err := json.Unmarshal(p.Badges, &badges); err != nil || badges == nil {
		badges = []string{}
	}
	return ProfileDTO{
		UserID:           p.UserID,
		Username:         p.Username,
		DisplayName:      p.DisplayName,
		Bio:              p.Bio,
		Title:            p.Title,
		AvatarURL:        p.AvatarURL,
		XP:               p.XP,
		Level:            p.Level,
		Streak:           p.Streak,
		Badges:           badges,
		Theme:            p.Theme,
		FontSize:         p.FontSize,
		BgColor:          p.BgColor,
		HighContrast:     p.HighContrast,
		Notifications:    p.Notifications,
		AnonymousMode:    p.AnonymousMode,
		AppLock:          p.AppLock,
		BiometricEnabled: p.BiometricEnabled,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
}
