package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"hbday/config"
	"hbday/handlers"
	"hbday/models"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestGetMusic(t *testing.T) {
	musicDir := t.TempDir()
	thumbnailDir := t.TempDir()
	writeFiles(t, musicDir, "Spring Day-BTS.mp3", "Untitled.mp3", "notes.txt")
	writeFiles(t, thumbnailDir, "BTS.jpg")

	cfg := &config.Config{MusicDir: musicDir, ThumbnailDir: thumbnailDir}
	req := httptest.NewRequest(http.MethodGet, "/api/music", nil)
	rec := httptest.NewRecorder()

	handlers.GetMusic(rec, req, cfg)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got []models.MusicItem
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Non-mp3 files are skipped; entries come back in directory order.
	want := []models.MusicItem{
		{
			Title:     "Spring Day",
			Artist:    "BTS",
			Src:       "/music/Spring Day-BTS.mp3",
			Thumbnail: "/thumbnail/BTS.jpg",
		},
		{
			Title:     "Untitled",
			Artist:    "Unknown",
			Src:       "/music/Untitled.mp3",
			Thumbnail: "/thumbnail/none.jpg",
		},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGetMusicMissingThumbnailDir(t *testing.T) {
	musicDir := t.TempDir()
	writeFiles(t, musicDir, "Candle-IU.mp3")

	cfg := &config.Config{
		MusicDir:     musicDir,
		ThumbnailDir: filepath.Join(musicDir, "does-not-exist"),
	}
	req := httptest.NewRequest(http.MethodGet, "/api/music", nil)
	rec := httptest.NewRecorder()

	handlers.GetMusic(rec, req, cfg)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got []models.MusicItem
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].Thumbnail != "/thumbnail/none.jpg" {
		t.Errorf("got %+v, want one item with the fallback thumbnail", got)
	}
}

func TestGetMusicMissingMusicDir(t *testing.T) {
	cfg := &config.Config{
		MusicDir:     filepath.Join(t.TempDir(), "does-not-exist"),
		ThumbnailDir: t.TempDir(),
	}
	req := httptest.NewRequest(http.MethodGet, "/api/music", nil)
	rec := httptest.NewRecorder()

	handlers.GetMusic(rec, req, cfg)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
