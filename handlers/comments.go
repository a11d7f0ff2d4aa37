package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"hbday/config"
	"hbday/logger"
	"hbday/middleware"
	"hbday/models"
	"hbday/utils"
)

const commentsCacheKey = "cache:comments"

func GetComments(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	var comments []models.Comment
	if utils.CacheGet(redisClient, commentsCacheKey, &comments) {
		writeJSON(w, http.StatusOK, comments)
		return
	}

	comments, err := utils.GetComments(db)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load comments: %v", err)
		writeError(w, "failed to load comments", http.StatusInternalServerError)
		return
	}

	if err := utils.CacheSet(redisClient, commentsCacheKey, comments); err != nil {
		logger.Log(r.Context()).Warnf("can't cache comments: %v", err)
	}
	writeJSON(w, http.StatusOK, comments)
}

type addCommentRequest struct {
	Author   string `json:"author"`
	Password string `json:"password"`
	Text     string `json:"text"`
}

func AddComment(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) {
	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Author == "" || req.Password == "" || req.Text == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := utils.ValidateCommentInput(req.Author, req.Text); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't hash comment password: %v", err)
		writeError(w, "failed to save comment", http.StatusInternalServerError)
		return
	}

	comment, err := utils.AddComment(db, req.Author, req.Text, hash)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't insert comment: %v", err)
		writeError(w, "failed to save comment", http.StatusInternalServerError)
		return
	}

	if err := utils.CacheInvalidate(redisClient, commentsCacheKey); err != nil {
		logger.Log(r.Context()).Warnf("can't invalidate comment cache: %v", err)
	}

	if cfg.SendgridAPIKey != "" && cfg.OwnerEmail != "" {
		go func(author, text string) {
			if err := utils.SendCommentAlert(cfg.SendgridAPIKey, cfg.OwnerEmail, author, text); err != nil {
				logger.Log(context.Background()).Warnf("can't send comment alert: %v", err)
			}
		}(comment.Author, comment.Text)
	}

	writeJSON(w, http.StatusOK, comment)
}

type updateCommentRequest struct {
	Password string `json:"password"`
	Text     string `json:"text"`
}

func UpdateComment(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Password == "" || req.Text == "" || len(req.Text) > 1000 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	hash, err := utils.GetCommentHash(db, id)
	if errors.Is(err, utils.ErrCommentNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	} else if err != nil {
		logger.Log(r.Context()).Errorf("can't load comment %d: %v", id, err)
		writeError(w, "failed to update comment", http.StatusInternalServerError)
		return
	}

	if !utils.CheckPasswordHash(req.Password, hash) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	comment, err := utils.UpdateComment(db, id, req.Text)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't update comment %d: %v", id, err)
		writeError(w, "failed to update comment", http.StatusInternalServerError)
		return
	}

	if err := utils.CacheInvalidate(redisClient, commentsCacheKey); err != nil {
		logger.Log(r.Context()).Warnf("can't invalidate comment cache: %v", err)
	}
	writeJSON(w, http.StatusOK, comment)
}

func DeleteComment(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if _, ok := middleware.Username(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err = utils.DeleteComment(db, id)
	if errors.Is(err, utils.ErrCommentNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	} else if err != nil {
		logger.Log(r.Context()).Errorf("can't delete comment %d: %v", id, err)
		writeError(w, "failed to delete comment", http.StatusInternalServerError)
		return
	}

	if err := utils.CacheInvalidate(redisClient, commentsCacheKey); err != nil {
		logger.Log(r.Context()).Warnf("can't invalidate comment cache: %v", err)
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Deleted"))
}
