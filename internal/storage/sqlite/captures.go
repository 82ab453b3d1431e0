package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/cashbench/internal/models"
)

// CreateCapture persists a balance snapshot.
func (s *SQLiteStore) CreateCapture(ctx context.Context, capture *models.Capture) error {
	if capture.ID == "" {
		capture.ID = uuid.New().String()
	}
	if capture.CreatedAt == 0 {
		capture.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO captures (id, user_id, amount, note, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		capture.ID, capture.UserID, capture.Amount, capture.Note, nullString(capture.Source), capture.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert capture: %w", err)
	}
	return nil
}

// ListCaptures returns the user's captures, newest first.
func (s *SQLiteStore) ListCaptures(ctx context.Context, userID string) ([]models.Capture, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, amount, note, source, created_at
		 FROM captures WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list captures: %w", err)
	}
	defer rows.Close()

	var captures []models.Capture
	for rows.Next() {
		var c models.Capture
		var source sql.NullString
		if err := rows.Scan(&c.ID, &c.UserID, &c.Amount, &c.Note, &source, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan capture: %w", err)
		}
		c.Source = source.String
		captures = append(captures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate captures: %w", err)
	}
	return captures, nil
}

// UpdateCapture changes a capture's amount and note.
func (s *SQLiteStore) UpdateCapture(ctx context.Context, capture *models.Capture) error {
	return s.execOne(ctx, "capture", capture.ID,
		"UPDATE captures SET amount = ?, note = ? WHERE id = ? AND user_id = ?",
		capture.Amount, capture.Note, capture.ID, capture.UserID,
	)
}

// DeleteCapture removes one of the user's captures.
func (s *SQLiteStore) DeleteCapture(ctx context.Context, userID, captureID string) error {
	return s.execOne(ctx, "capture", captureID,
		"DELETE FROM captures WHERE id = ? AND user_id = ?", captureID, userID)
}
