package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              int       `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`         // Encrypted in DB
	EmailBlindIndex string    `db:"email_blind_index" json:"-"` // HMAC hash for searching
	PasswordHash    string    `db:"password_hash" json:"-"`
	DisplayName     *string   `db:"display_name" json:"display_name,omitempty"`
	IsAdmin         bool      `db:"is_admin" json:"is_admin"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type Profile struct {
	UserID                int             `db:"user_id" json:"user_id"`
	Username              *string         `db:"username" json:"username,omitempty"`
	DisplayName           *string         `db:"display_name" json:"display_name,omitempty"`
	Bio                   *string         `db:"bio" json:"bio,omitempty"` // Encrypted in DB
	Title                 string          `db:"title" json:"title"`
	AvatarURL             *string         `db:"avatar_url" json:"avatar_url,omitempty"`
	XP                    int             `db:"xp" json:"xp"`
	Level                 int             `db:"level" json:"level"`
	Streak                int             `db:"streak" json:"streak"`
	Badges                json.RawMessage `db:"badges" json:"badges"`
	Theme                 string          `db:"theme" json:"theme"`
	FontSize              string          `db:"font_size" json:"font_size"`
	BgColor               string          `db:"bg_color" json:"bg_color"`
	HighContrast          bool            `db:"high_contrast" json:"high_contrast"`
	Notifications         bool            `db:"notifications" json:"notifications"`
	AnonymousMode         bool            `db:"anonymous_mode" json:"anonymous_mode"`
	AppLock               bool            `db:"app_lock" json:"app_lock"`
	PasscodeHash          *string         `db:"passcode_hash" json:"-"`
	BiometricEnabled      bool            `db:"biometric_enabled" json:"biometric_enabled"`
	BiometricCredentialID *string         `db:"biometric_credential_id" json:"-"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at" json:"updated_at"`
}

type MoodLog struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Mood      int       `db:"mood" json:"mood"` // 1..7
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type JournalEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`     // Encrypted in DB
	Content   string    `db:"content" json:"content"` // Encrypted in DB
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
