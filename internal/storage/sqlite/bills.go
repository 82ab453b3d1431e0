package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/mmynk/cashbench/internal/models"
	"github.com/mmynk/cashbench/internal/storage"
)

const billColumns = "id, user_id, name, default_amount, frequency, next_due_date, last_advanced_at, created_at"

func scanBillTemplate(row rowScanner) (models.BillTemplate, error) {
	var t models.BillTemplate
	var freq string
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.DefaultAmount, &freq,
		&t.NextDueDate, &t.LastAdvancedAt, &t.CreatedAt)
	t.Frequency = models.Frequency(freq)
	return t, err
}

// CreateBillTemplate persists a new bill template.
func (s *SQLiteStore) CreateBillTemplate(ctx context.Context, tmpl *models.BillTemplate) error {
	if tmpl.ID == "" {
		tmpl.ID = uuid.New().String()
	}
	if tmpl.CreatedAt == 0 {
		tmpl.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO bill_templates ("+billColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		tmpl.ID, tmpl.UserID, tmpl.Name, tmpl.DefaultAmount, string(tmpl.Frequency),
		tmpl.NextDueDate, tmpl.LastAdvancedAt, tmpl.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill template: %w", err)
	}
	return nil
}

// GetBillTemplate retrieves one of the user's templates.
func (s *SQLiteStore) GetBillTemplate(ctx context.Context, userID, templateID string) (*models.BillTemplate, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+billColumns+" FROM bill_templates WHERE id = ? AND user_id = ?",
		templateID, userID,
	)
	t, err := scanBillTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bill template %s: %w", templateID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill template: %w", err)
	}
	return &t, nil
}

// ListBillTemplates returns the user's templates by due date (undated last), then name.
func (s *SQLiteStore) ListBillTemplates(ctx context.Context, userID string) ([]models.BillTemplate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+billColumns+` FROM bill_templates WHERE user_id = ?
		 ORDER BY next_due_date IS NULL, next_due_date ASC, name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill templates: %w", err)
	}
	defer rows.Close()

	var templates []models.BillTemplate
	for rows.Next() {
		t, err := scanBillTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bill templates: %w", err)
	}
	return templates, nil
}

// UpdateBillTemplate overwrites every editable column, including both dates.
func (s *SQLiteStore) UpdateBillTemplate(ctx context.Context, tmpl *models.BillTemplate) error {
	return s.execOne(ctx, "bill template", tmpl.ID,
		`UPDATE bill_templates
		 SET name = ?, default_amount = ?, frequency = ?, next_due_date = ?, last_advanced_at = ?
		 WHERE id = ? AND user_id = ?`,
		tmpl.Name, tmpl.DefaultAmount, string(tmpl.Frequency), tmpl.NextDueDate, tmpl.LastAdvancedAt,
		tmpl.ID, tmpl.UserID,
	)
}

// SetBillTemplateDates writes the pair produced by an advance.
func (s *SQLiteStore) SetBillTemplateDates(ctx context.Context, userID, templateID string, next, lastAdvanced calendar.Date) error {
	return s.execOne(ctx, "bill template", templateID,
		"UPDATE bill_templates SET next_due_date = ?, last_advanced_at = ? WHERE id = ? AND user_id = ?",
		next, lastAdvanced, templateID, userID,
	)
}

// DeleteBillTemplate removes one of the user's templates.
func (s *SQLiteStore) DeleteBillTemplate(ctx context.Context, userID, templateID string) error {
	return s.execOne(ctx, "bill template", templateID,
		"DELETE FROM bill_templates WHERE id = ? AND user_id = ?", templateID, userID)
}
