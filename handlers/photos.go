package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"hbday/config"
	"hbday/logger"
	"hbday/middleware"
	"hbday/models"
	"hbday/storage"
	"hbday/utils"
)

const photosCacheKey = "cache:photos"

const maxUploadBytes = 10 << 20 // 10 MiB

func GetPhotos(w http.ResponseWriter, r *http.Request, store *storage.Client, redisClient *redis.Client, cfg *config.Config) {
	var photos []models.Photo
	if utils.CacheGet(redisClient, photosCacheKey, &photos) {
		writeJSON(w, http.StatusOK, photos)
		return
	}

	objects, err := store.List(r.Context(), cfg.BucketPath)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't list photo bucket: %v", err)
		writeError(w, "failed to load photos", http.StatusInternalServerError)
		return
	}

	photos = make([]models.Photo, 0, len(objects))
	for _, obj := range objects {
		photos = append(photos, models.Photo{
			ID:        obj.ID,
			URL:       store.PublicURL(cfg.BucketPath + "/" + obj.Name),
			Name:      obj.Name,
			Timestamp: obj.CreatedAt.Format(time.RFC3339),
		})
	}

	if err := utils.CacheSet(redisClient, photosCacheKey, photos); err != nil {
		logger.Log(r.Context()).Warnf("can't cache photos: %v", err)
	}
	writeJSON(w, http.StatusOK, photos)
}

func UploadPhoto(w http.ResponseWriter, r *http.Request, store *storage.Client, redisClient *redis.Client, cfg *config.Config) {
	if _, ok := middleware.Username(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, "file missing", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := header.Filename
	if err := utils.ValidatePhotoName(name); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Read one byte past the cap so an oversized file is detected instead
	// of silently storing a truncated photo.
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't read uploaded file: %v", err)
		writeError(w, "failed to upload photo", http.StatusInternalServerError)
		return
	}
	if len(data) > maxUploadBytes {
		writeError(w, "file too large", http.StatusRequestEntityTooLarge)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	uploadPath := cfg.BucketPath + "/" + name
	id, err := store.Upload(r.Context(), uploadPath, contentType, data)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't upload photo %q: %v", name, err)
		writeError(w, "failed to upload photo", http.StatusInternalServerError)
		return
	}
	if id == "" {
		id = uuid.NewString()
	}

	if err := utils.CacheInvalidate(redisClient, photosCacheKey); err != nil {
		logger.Log(r.Context()).Warnf("can't invalidate photo cache: %v", err)
	}

	writeJSON(w, http.StatusOK, models.Photo{
		ID:        id,
		URL:       store.PublicURL(uploadPath),
		Name:      name,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

type deletePhotoRequest struct {
	Name string `json:"name"`
}

func DeletePhoto(w http.ResponseWriter, r *http.Request, store *storage.Client, redisClient *redis.Client, cfg *config.Config) {
	if _, ok := middleware.Username(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req deletePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, "photo name missing", http.StatusBadRequest)
		return
	}
	if err := utils.ValidatePhotoName(req.Name); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := store.Remove(r.Context(), cfg.BucketPath+"/"+req.Name); err != nil {
		logger.Log(r.Context()).Errorf("can't remove photo %q: %v", req.Name, err)
		writeError(w, "failed to delete photo", http.StatusInternalServerError)
		return
	}

	if err := utils.CacheInvalidate(redisClient, photosCacheKey); err != nil {
		logger.Log(r.Context()).Warnf("can't invalidate photo cache: %v", err)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
