package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hbday/models"
)

var ErrCommentNotFound = errors.New("comment not found")

func GetComments(db *pgxpool.Pool) ([]models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := db.Query(ctx,
		"SELECT id, author, text, created_at FROM comments ORDER BY created_at DESC;")
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c := models.Comment{}
		if err := rows.Scan(&c.ID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		c.Timestamp = c.CreatedAt.Format(time.RFC3339)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading comment rows: %w", err)
	}

	return comments, nil
}

func AddComment(db *pgxpool.Pool, author, text string, passwordHash []byte) (*models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := models.Comment{Author: author, Text: text}
	stmt := `INSERT INTO comments (author, text, password_hash, created_at)
		VALUES ($1, $2, $3, NOW()) RETURNING id, created_at;`
	if err := db.QueryRow(ctx, stmt, author, text, passwordHash).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	c.Timestamp = c.CreatedAt.Format(time.RFC3339)

	return &c, nil
}

// GetCommentHash loads the stored password hash for one comment.
func GetCommentHash(db *pgxpool.Pool, id int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var hash []byte
	err := db.QueryRow(ctx, "SELECT password_hash FROM comments WHERE id = $1;", id).Scan(&hash)
	if err == pgx.ErrNoRows {
		return nil, ErrCommentNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}
	return hash, nil
}

func UpdateComment(db *pgxpool.Pool, id int, text string) (*models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := models.Comment{ID: id, Text: text}
	stmt := "UPDATE comments SET text = $1 WHERE id = $2 RETURNING author, created_at;"
	err := db.QueryRow(ctx, stmt, text, id).Scan(&c.Author, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrCommentNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", id, err)
	}
	c.Timestamp = c.CreatedAt.Format(time.RFC3339)

	return &c, nil
}

func DeleteComment(db *pgxpool.Pool, id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tag, err := db.Exec(ctx, "DELETE FROM comments WHERE id = $1;", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCommentNotFound
	}
	return nil
}
