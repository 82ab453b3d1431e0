package models

import (
	"fmt"

	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/shopspring/decimal"
)

// Status is informational only; it never affects a calculation.
type Status string

const (
	StatusPaid     Status = "paid"
	StatusPending  Status = "pending"
	StatusPlanning Status = "planning"
)

// ParseStatus validates s as a Status. An empty string means planning.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "":
		return StatusPlanning, nil
	case StatusPaid, StatusPending, StatusPlanning:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Transaction is a ledger entry on one workbench.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// UserID is the owner.
	UserID string

	// Description is the entry's label (e.g., "Rent").
	Description string

	// Amount is signed: positive is income, negative is expense.
	Amount decimal.Decimal

	// Status is paid, pending or planning.
	Status Status

	// IsInCalc controls whether the entry contributes to projections.
	IsInCalc bool

	// DueDate is optional.
	DueDate calendar.Date

	// SortOrder is the user-defined position within the workbench.
	SortOrder int

	// Tag names the workbench the entry belongs to. Empty means main.
	Tag string

	// CreatedAt is the Unix timestamp when the entry was created.
	CreatedAt int64
}
