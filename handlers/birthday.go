package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"hbday/logger"
	"hbday/middleware"
	"hbday/utils"
)

type noteResponse struct {
	Message string `json:"message"`
}

func GetBirthday(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	message, err := utils.GetNote(db)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load birthday note: %v", err)
		writeError(w, "failed to load note", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, noteResponse{Message: message})
}

func UpdateBirthday(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool) {
	if _, ok := middleware.Username(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req noteResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, "message missing", http.StatusBadRequest)
		return
	}

	if err := utils.SetNote(db, req.Message); err != nil {
		logger.Log(r.Context()).Errorf("can't save birthday note: %v", err)
		writeError(w, "failed to save note", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, noteResponse{Message: req.Message})
}
