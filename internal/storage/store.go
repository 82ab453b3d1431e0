// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/mmynk/cashbench/internal/models"
)

// ErrNotFound is returned when a row does not exist or belongs to another user.
var ErrNotFound = errors.New("not found")

// Store defines the interface for dashboard storage operations.
// Every method other than the user lookups is scoped by userID: rows owned by
// another user behave exactly like rows that do not exist.
type Store interface {
	UserStore
	AccountStore
	BillTemplateStore
	TransactionStore
	CaptureStore
	NoteStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists registered users.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns nil, nil when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns nil, nil when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// AccountStore persists accounts.
type AccountStore interface {
	// CreateAccount inserts account; ID is generated when empty.
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, userID, accountID string) (*models.Account, error)
	// ListAccounts returns accounts ordered by sort_order, then name.
	ListAccounts(ctx context.Context, userID string) ([]models.Account, error)
	UpdateAccount(ctx context.Context, account *models.Account) error
	DeleteAccount(ctx context.Context, userID, accountID string) error
	// SetAccountOrder assigns sort_order = index for each id, atomically.
	SetAccountOrder(ctx context.Context, userID string, ids []string) error
}

// BillTemplateStore persists recurring bill templates.
type BillTemplateStore interface {
	CreateBillTemplate(ctx context.Context, tmpl *models.BillTemplate) error
	GetBillTemplate(ctx context.Context, userID, templateID string) (*models.BillTemplate, error)
	// ListBillTemplates returns templates ordered by next_due_date (undated
	// last), then name.
	ListBillTemplates(ctx context.Context, userID string) ([]models.BillTemplate, error)
	UpdateBillTemplate(ctx context.Context, tmpl *models.BillTemplate) error
	// SetBillTemplateDates writes the {next_due_date, last_advanced_at} pair.
	SetBillTemplateDates(ctx context.Context, userID, templateID string, next, lastAdvanced calendar.Date) error
	DeleteBillTemplate(ctx context.Context, userID, templateID string) error
}

// TransactionStore persists ledger entries.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransaction(ctx context.Context, userID, txnID string) (*models.Transaction, error)
	// ListTransactions returns every entry of the user ordered by sort_order,
	// then due_date, then newest first.
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	SetTransactionInCalc(ctx context.Context, userID, txnID string, inCalc bool) error
	DeleteTransaction(ctx context.Context, userID, txnID string) error
	// SetTransactionOrder assigns sort_order = index for each id, atomically.
	SetTransactionOrder(ctx context.Context, userID string, ids []string) error
}

// CaptureStore persists balance snapshots.
type CaptureStore interface {
	CreateCapture(ctx context.Context, capture *models.Capture) error
	// ListCaptures returns captures newest first.
	ListCaptures(ctx context.Context, userID string) ([]models.Capture, error)
	UpdateCapture(ctx context.Context, capture *models.Capture) error
	DeleteCapture(ctx context.Context, userID, captureID string) error
}

// NoteStore persists the per-user note.
type NoteStore interface {
	// GetNote returns nil, nil when the user has never saved a note.
	GetNote(ctx context.Context, userID string) (*models.Note, error)
	// SaveNote inserts or replaces the user's note.
	SaveNote(ctx context.Context, note *models.Note) error
}
