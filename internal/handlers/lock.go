package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Student4344/social-minds0/internal/lock"
)

type LockHandler struct {
	db *sqlx.DB
}

func NewLockHandler(db *sqlx.DB) *LockHandler { return &LockHandler{db: db} }

type passcodeRequest struct {
	Passcode string `json:"passcode"`
}

// SetPasscode enables app lock with a 4-6 digit passcode, stored hashed.
func (h *LockHandler) SetPasscode(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req passcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	hash, err := lock.HashPasscode(req.Passcode)
	if err != nil {
		if errors.Is(err, lock.ErrInvalidPasscode) {
			http.Error(w, "Passcode must be at least 4 digits", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if _, err := h.db.Exec(`UPDATE profiles SET passcode_hash=$2, app_lock=true, updated_at=NOW()
	                         WHERE user_id=$1`, userID, hash); err != nil {
		http.Error(w, "could not save", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Verify checks a submitted passcode against the stored hash: 200 unlocks,
// anything else leaves the gate locked.
func (h *LockHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req passcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	var hash sql.NullString
	var enabled bool
	err := h.db.QueryRowx(`SELECT passcode_hash, app_lock FROM profiles WHERE user_id=$1`, userID).
		Scan(&hash, &enabled)
	if err != nil || !enabled || !hash.Valid {
		http.Error(w, "app lock not enabled", http.StatusBadRequest)
		return
	}
	if lock.VerifyPasscode(hash.String, req.Passcode) != nil {
		http.Error(w, "Incorrect passcode", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"unlocked": true})
}

// Disable turns off app lock and clears the passcode and any biometric
// registration with it.
func (h *LockHandler) Disable(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	if _, err := h.db.Exec(`UPDATE profiles
	                         SET app_lock=false, passcode_hash=NULL,
	                             biometric_enabled=false, biometric_credential_id=NULL,
	                             updated_at=NOW()
	                         WHERE user_id=$1`, userID); err != nil {
		http.Error(w, "could not update", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type biometricRequest struct {
	CredentialID string `json:"credential_id"`
}

// EnableBiometric records the platform credential id. Only the identifier is
// stored; a successful platform assertion is a local gate, never a
// substitute for the JWT. Enabling biometric also enables app lock, minting
// a random passcode when none exists (returned once so it isn't lost).
func (h *LockHandler) EnableBiometric(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req biometricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.CredentialID) == "" {
		http.Error(w, "credential_id required", http.StatusBadRequest)
		return
	}

	var hasPasscode bool
	if err := h.db.Get(&hasPasscode, `SELECT passcode_hash IS NOT NULL FROM profiles WHERE user_id=$1`, userID); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	resp := map[string]any{"biometric_enabled": true}
	if !hasPasscode {
		passcode, err := lock.GeneratePasscode()
		if err != nil {
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
		hash, err := lock.HashPasscode(passcode)
		if err != nil {
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
		if _, err := h.db.Exec(`UPDATE profiles
		                         SET biometric_enabled=true, biometric_credential_id=$2,
		                             app_lock=true, passcode_hash=$3, updated_at=NOW()
		                         WHERE user_id=$1`, userID, req.CredentialID, hash); err != nil {
			http.Error(w, "could not save", http.StatusInternalServerError)
			return
		}
		resp["generated_passcode"] = passcode
	} else {
		if _, err := h.db.Exec(`UPDATE profiles
		                         SET biometric_enabled=true, biometric_credential_id=$2,
		                             app_lock=true, updated_at=NOW()
		                         WHERE user_id=$1`, userID, req.CredentialID); err != nil {
			http.Error(w, "could not save", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Status reports the lock flags the client shell reads at startup.
func (h *LockHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var appLock, biometric bool
	if err := h.db.QueryRowx(`SELECT app_lock, biometric_enabled FROM profiles WHERE user_id=$1`, userID).
		Scan(&appLock, &biometric); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"app_lock": appLock, "biometric_enabled": biometric})
}
