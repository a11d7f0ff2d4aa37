package models

// MusicItem is one playlist entry derived from the static music files.
type MusicItem struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Src       string `json:"src"`
	Thumbnail string `json:"thumbnail"`
}
