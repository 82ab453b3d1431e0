package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/cashbench/internal/models"
)

// GetNote returns the user's note, or nil if none was ever saved.
func (s *SQLiteStore) GetNote(ctx context.Context, userID string) (*models.Note, error) {
	note := &models.Note{}
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, content, updated_at FROM notes WHERE user_id = ?", userID,
	).Scan(&note.UserID, &note.Content, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// SaveNote upserts the user's note and stamps UpdatedAt.
func (s *SQLiteStore) SaveNote(ctx context.Context, note *models.Note) error {
	note.UpdatedAt = time.Now().Unix()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (user_id, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		note.UserID, note.Content, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}
