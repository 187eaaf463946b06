package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Student4344/social-minds0/internal/avatars"
	"github.com/Student4344/social-minds0/internal/models"
	"github.com/Student4344/social-minds0/internal/services"
)

const maxAvatarBytes = 5 << 20

type ProfileHandler struct {
	db     *sqlx.DB
	encSvc *services.EncryptionService
	store  *avatars.Store
}

func NewProfileHandler(db *sqlx.DB, encSvc *services.EncryptionService, store *avatars.Store) *ProfileHandler {
	return &ProfileHandler{db: db, encSvc: encSvc, store: store}
}

const profileColumns = `user_id, username, display_name, bio, title, avatar_url, xp, level, streak, badges,
	theme, font_size, bg_color, high_contrast, notifications, anonymous_mode,
	app_lock, passcode_hash, biometric_enabled, biometric_credential_id, created_at, updated_at`

func (h *ProfileHandler) fetch(userID int) (models.Profile, error) {
	var p models.Profile
	err := h.db.Get(&p, `SELECT `+profileColumns+` FROM profiles WHERE user_id=$1`, userID)
	if err != nil {
		return p, err
	}
	err = h.encSvc.DecryptProfile(&p)
	return p, err
}

// GetMe returns the current user's profile.
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	p, err := h.fetch(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ToProfileDTO(p))
}

// UpdateMe updates provided identity fields on the current user's profile.
// Usernames are checked for uniqueness before the write.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var body struct {
		Username    *string `json:"username"`
		DisplayName *string `json:"display_name"`
		Bio         *string `json:"bio"`
		Title       *string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1
	if body.Username != nil {
		username := strings.TrimSpace(*body.Username)
		if username == "" {
			http.Error(w, "username cannot be empty", http.StatusBadRequest)
			return
		}
		var taken bool
		if err := h.db.Get(&taken, `SELECT EXISTS (SELECT 1 FROM profiles WHERE username=$1 AND user_id<>$2)`,
			username, userID); err != nil {
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
		if taken {
			http.Error(w, "username already taken", http.StatusConflict)
			return
		}
		setClauses = append(setClauses, fmt.Sprintf("username=$%d", argIdx))
		args = append(args, username)
		argIdx++
		// The SPA mirrors the username into display_name unless one is
		// provided explicitly.
		if body.DisplayName == nil {
			body.DisplayName = &username
		}
	}
	if body.DisplayName != nil {
		setClauses = append(setClauses, fmt.Sprintf("display_name=$%d", argIdx))
		args = append(args, *body.DisplayName)
		argIdx++
	}
	if body.Bio != nil {
		tmp := models.Profile{Bio: body.Bio}
		if err := h.encSvc.EncryptProfile(&tmp); err != nil {
			http.Error(w, "could not encrypt bio", http.StatusInternalServerError)
			return
		}
		setClauses = append(setClauses, fmt.Sprintf("bio=$%d", argIdx))
		args = append(args, tmp.Bio)
		argIdx++
	}
	if body.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title=$%d", argIdx))
		args = append(args, *body.Title)
		argIdx++
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

// UploadAvatar accepts a multipart image, stores it under the user's avatar
// path (upsert-on-write), and records the public URL on the profile.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "avatar file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.store.Save(userID, filepath.Ext(header.Filename), file)
	if err != nil {
		http.Error(w, "could not store avatar", http.StatusBadRequest)
		return
	}
	if _, err := h.db.Exec(`UPDATE profiles SET avatar_url=$2, updated_at=NOW() WHERE user_id=$1`, userID, url); err != nil {
		http.Error(w, "could not update", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"avatar_url": url})
}
