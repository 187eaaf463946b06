package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/Student4344/social-minds0/internal/lock"
	mw "github.com/Student4344/social-minds0/internal/middleware"
)

type SessionHandler struct {
	db     *sqlx.DB
	authMW *mw.AuthMiddleware
}

func NewSessionHandler(db *sqlx.DB, authMW *mw.AuthMiddleware) *SessionHandler {
	return &SessionHandler{db: db, authMW: authMW}
}

// Resolve tells the client shell which gate state to mount into. The bearer
// token is optional here: no or invalid token resolves to unauthenticated.
func (h *SessionHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	gate := lock.NewGate()

	userID, authenticated := h.authMW.UserID(r)
	lockEnabled := false
	if authenticated {
		if err := h.db.Get(&lockEnabled, `SELECT app_lock FROM profiles WHERE user_id=$1`, userID); err != nil {
			lockEnabled = false
		}
	}
	state := gate.ResolveSession(authenticated, lockEnabled)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"state": state.String()})
}
