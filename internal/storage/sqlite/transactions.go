package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/cashbench/internal/models"
	"github.com/mmynk/cashbench/internal/storage"
)

const transactionColumns = "id, user_id, description, amount, status, is_in_calc, due_date, sort_order, tag, created_at"

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	var status string
	var tag sql.NullString
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &status, &t.IsInCalc,
		&t.DueDate, &t.SortOrder, &tag, &t.CreatedAt)
	t.Status = models.Status(status)
	t.Tag = tag.String
	return t, err
}

// CreateTransaction persists a new ledger entry. An empty tag is stored as
// NULL so the main workbench query matches it.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().Unix()
	}
	if txn.Status == "" {
		txn.Status = models.StatusPlanning
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO transactions ("+transactionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		txn.ID, txn.UserID, txn.Description, txn.Amount, string(txn.Status), txn.IsInCalc,
		txn.DueDate, txn.SortOrder, nullString(txn.Tag), txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves one of the user's entries.
func (s *SQLiteStore) GetTransaction(ctx context.Context, userID, txnID string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ? AND user_id = ?",
		txnID, userID,
	)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", txnID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &t, nil
}

// ListTransactions returns all of the user's entries by sort_order, then
// due_date, then newest first. Partitioning by workbench happens in the caller.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = ?
		 ORDER BY sort_order ASC, due_date IS NULL, due_date ASC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

// SetTransactionInCalc toggles whether the entry counts toward projections.
func (s *SQLiteStore) SetTransactionInCalc(ctx context.Context, userID, txnID string, inCalc bool) error {
	return s.execOne(ctx, "transaction", txnID,
		"UPDATE transactions SET is_in_calc = ? WHERE id = ? AND user_id = ?", inCalc, txnID, userID)
}

// DeleteTransaction removes one of the user's entries.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, userID, txnID string) error {
	return s.execOne(ctx, "transaction", txnID,
		"DELETE FROM transactions WHERE id = ? AND user_id = ?", txnID, userID)
}

// SetTransactionOrder persists a drag-and-drop reorder within a workbench.
func (s *SQLiteStore) SetTransactionOrder(ctx context.Context, userID string, ids []string) error {
	return s.setOrder(ctx, "transactions", userID, ids)
}
