package models

// Photo describes one object in the photo bucket as the frontend shows it.
type Photo struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}
