package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/Student4344/social-minds0/internal/models"
	"github.com/Student4344/social-minds0/internal/services"
)

type AuthHandler struct {
	db        *sqlx.DB
	encSvc    *services.EncryptionService
	jwtSecret []byte
}

func NewAuthHandler(db *sqlx.DB, encSvc *services.EncryptionService, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{db: db, encSvc: encSvc, jwtSecret: jwtSecret}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// Signup godoc
// @Summary Create an account
// @Description Registers a user, seeds their profile, and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentials true "Signup credentials"
// @Success 200 {object} map[string]interface{} "token"
// @Failure 400 {string} string "Bad request"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	c.Email = strings.TrimSpace(strings.ToLower(c.Email))
	if c.Email == "" || c.Password == "" {
		http.Error(w, "email and password required", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "could not hash password", http.StatusInternalServerError)
		return
	}

	user := models.User{Email: c.Email, PasswordHash: string(hashed)}
	if c.FullName != "" {
		name := strings.TrimSpace(c.FullName)
		user.DisplayName = &name
	}
	if err := h.encSvc.EncryptUser(&user); err != nil {
		http.Error(w, "could not encrypt user data", http.StatusInternalServerError)
		return
	}

	tx, err := h.db.Beginx()
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	defer tx.Rollback()

	err = tx.QueryRowx(`INSERT INTO users (email, email_blind_index, password_hash, display_name)
	                     VALUES ($1, $2, $3, $4) RETURNING id`,
		user.Email, user.EmailBlindIndex, user.PasswordHash, user.DisplayName).Scan(&user.ID)
	if err != nil {
		http.Error(w, "could not create user", http.StatusBadRequest)
		return
	}
	if _, err := tx.Exec(`INSERT INTO profiles (user_id, display_name) VALUES ($1, $2)`,
		user.ID, user.DisplayName); err != nil {
		http.Error(w, "could not create profile", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	token, err := h.issueJWT(user.ID)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"token": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	c.Email = strings.TrimSpace(strings.ToLower(c.Email))
	if c.Email == "" || c.Password == "" {
		http.Error(w, "email and password required", http.StatusBadRequest)
		return
	}

	var user models.User
	err := h.db.Get(&user, `SELECT id, email, email_blind_index, password_hash, display_name, is_admin, created_at
	                         FROM users WHERE email_blind_index=$1`, h.encSvc.EmailBlindIndex(c.Email))
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(c.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	token, err := h.issueJWT(user.ID)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"token": token})
}

func (h *AuthHandler) issueJWT(userID int) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
