package handlers

import (
	"net/http"
	"os"
	"strings"

	"hbday/config"
	"hbday/logger"
	"hbday/models"
)

// GetMusic builds the playlist from the static music directory. Tracks
// are named "Title-Artist.mp3"; the thumbnail whose file name starts
// with the artist is paired with the track.
func GetMusic(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	entries, err := os.ReadDir(cfg.MusicDir)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't read music dir %q: %v", cfg.MusicDir, err)
		writeError(w, "failed to load music list", http.StatusInternalServerError)
		return
	}

	// A missing thumbnail directory just means every track gets the
	// fallback image.
	thumbs, err := os.ReadDir(cfg.ThumbnailDir)
	if err != nil {
		logger.Log(r.Context()).Warnf("can't read thumbnail dir %q: %v", cfg.ThumbnailDir, err)
	}

	musicList := []models.MusicItem{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".mp3") {
			continue
		}

		title, artist := splitTrackName(strings.TrimSuffix(name, ".mp3"))

		thumbnail := "/thumbnail/none.jpg"
		if artist != "Unknown" {
			for _, t := range thumbs {
				if strings.HasPrefix(t.Name(), artist) {
					thumbnail = "/thumbnail/" + t.Name()
					break
				}
			}
		}

		musicList = append(musicList, models.MusicItem{
			Title:     title,
			Artist:    artist,
			Src:       "/music/" + name,
			Thumbnail: thumbnail,
		})
	}

	writeJSON(w, http.StatusOK, musicList)
}

func splitTrackName(name string) (title, artist string) {
	title, artist, found := strings.Cut(name, "-")
	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	if title == "" {
		title = "Unknown"
	}
	if !found || artist == "" {
		artist = "Unknown"
	}
	return title, artist
}
