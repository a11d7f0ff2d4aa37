package models

import "time"

// Comment is a guestbook entry. PasswordHash never leaves the server.
type Comment struct {
	ID           int       `db:"id" json:"id"`
	Author       string    `db:"author" json:"author"`
	Text         string    `db:"text" json:"text"`
	CreatedAt    time.Time `db:"created_at" json:"date"`
	Timestamp    string    `db:"-" json:"timestamp"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
}
