package handlers

import (
	"net/http"

	"hbday/middleware"
)

type statusResponse struct {
	IsAdmin *string `json:"isAdmin"`
}

// AdminStatus reports the identity the gate resolved for this request.
// The frontend re-fetches it after login and logout.
func AdminStatus(w http.ResponseWriter, r *http.Request) {
	if name, ok := middleware.Username(r.Context()); ok {
		writeJSON(w, http.StatusOK, statusResponse{IsAdmin: &name})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{IsAdmin: nil})
}
