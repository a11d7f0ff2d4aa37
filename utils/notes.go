package utils

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The birthday note lives in a single-row table. The original site kept
// it in a process global and lost it on every restart.

func GetNote(db *pgxpool.Pool) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var message string
	err := db.QueryRow(ctx, "SELECT message FROM site_note WHERE id = 1;").Scan(&message)
	if err == pgx.ErrNoRows {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return message, nil
}

func SetNote(db *pgxpool.Pool, message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := `INSERT INTO site_note (id, message) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET message = $1;`
	_, err := db.Exec(ctx, stmt, message)
	return err
}
