package handlers

import (
	"encoding/json"
	"net/http"

	"hbday/config"
	"hbday/logger"
	"hbday/sessions"
	"hbday/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginHandler checks the submitted pair against the configured admin
// credentials and issues a session cookie on success.
func LoginHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, store *sessions.Store) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "username or password missing", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, "username or password missing", http.StatusBadRequest)
		return
	}

	// Evaluate both halves before branching so a matching username alone
	// doesn't change response timing.
	idOK := utils.SecureCompare(req.Username, cfg.AdminID)
	pwOK := utils.SecureCompare(req.Password, cfg.AdminPW)
	if !idOK || !pwOK {
		// One failure message for both halves, so usernames can't be enumerated.
		logger.Log(r.Context()).Infow("admin login rejected")
		writeJSON(w, http.StatusUnauthorized, authResponse{Success: false, Message: "login failed"})
		return
	}

	sessionID := store.Create(req.Username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    sessionID,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(sessions.TTL.Seconds()),
	})

	logger.Log(r.Context()).Infow("admin logged in", "username", req.Username)
	writeJSON(w, http.StatusOK, authResponse{Success: true})
}

// LogoutHandler revokes the session named by the cookie and expires the
// cookie on the client. Logging out twice, or with no session at all,
// still succeeds.
func LogoutHandler(w http.ResponseWriter, r *http.Request, store *sessions.Store) {
	if st, err := r.Cookie(sessions.CookieName); err == nil && st.Value != "" {
		store.Delete(st.Value)
	}

	// Clear the cookie even when no server-side record existed.
	http.SetCookie(w, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, authResponse{Success: true})
}
