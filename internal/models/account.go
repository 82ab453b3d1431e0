package models

import "github.com/shopspring/decimal"

// Account is a balance the user tracks: a bank account, a card, a loan.
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID string

	// UserID is the owner.
	UserID string

	// Name is the display name (e.g., "Checking", "Visa 3619").
	Name string

	// CurrentBalance is the balance as the user last entered it.
	// For liabilities this is the amount owed, normally positive.
	CurrentBalance decimal.Decimal

	// IsLiability is true when the balance is owed rather than held.
	IsLiability bool

	// SortOrder is the user-defined display position.
	SortOrder int

	// ColorIndex is an optional UI color tag. Nil when unset.
	ColorIndex *int

	// IncludeInWorkbench is derived from the caller's exclusion set and is
	// never persisted.
	IncludeInWorkbench bool
}
