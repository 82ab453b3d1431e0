package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/cashbench/internal/models"
	"github.com/mmynk/cashbench/internal/storage"
)

const accountColumns = "id, user_id, name, current_balance, is_liability, sort_order, color_index"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var a models.Account
	var color sql.NullInt64
	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.CurrentBalance, &a.IsLiability, &a.SortOrder, &color); err != nil {
		return models.Account{}, err
	}
	if color.Valid {
		c := int(color.Int64)
		a.ColorIndex = &c
	}
	return a, nil
}

func colorValue(c *int) any {
	if c == nil {
		return nil
	}
	return *c
}

// CreateAccount persists a new account.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts ("+accountColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		account.ID, account.UserID, account.Name, account.CurrentBalance,
		account.IsLiability, account.SortOrder, colorValue(account.ColorIndex),
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// GetAccount retrieves one of the user's accounts.
func (s *SQLiteStore) GetAccount(ctx context.Context, userID, accountID string) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = ? AND user_id = ?",
		accountID, userID,
	)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", accountID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

// ListAccounts returns the user's accounts by sort_order, then name.
func (s *SQLiteStore) ListAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE user_id = ? ORDER BY sort_order ASC, name ASC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount overwrites name, balance, liability flag and color.
func (s *SQLiteStore) UpdateAccount(ctx context.Context, account *models.Account) error {
	return s.execOne(ctx, "account", account.ID,
		`UPDATE accounts SET name = ?, current_balance = ?, is_liability = ?, color_index = ?
		 WHERE id = ? AND user_id = ?`,
		account.Name, account.CurrentBalance, account.IsLiability, colorValue(account.ColorIndex),
		account.ID, account.UserID,
	)
}

// DeleteAccount removes one of the user's accounts.
func (s *SQLiteStore) DeleteAccount(ctx context.Context, userID, accountID string) error {
	return s.execOne(ctx, "account", accountID,
		"DELETE FROM accounts WHERE id = ? AND user_id = ?", accountID, userID)
}

// SetAccountOrder persists a drag-and-drop reorder.
func (s *SQLiteStore) SetAccountOrder(ctx context.Context, userID string, ids []string) error {
	return s.setOrder(ctx, "accounts", userID, ids)
}
