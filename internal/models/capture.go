package models

import "github.com/shopspring/decimal"

// Capture is a saved snapshot of a workbench's projected balance.
type Capture struct {
	ID     string
	UserID string

	// Amount is the captured balance.
	Amount decimal.Decimal

	// Note is a free-form label; defaults to the source workbench title.
	Note string

	// Source is the title of the workbench the capture came from. Empty for
	// manual captures.
	Source string

	// CreatedAt is the Unix timestamp when the capture was taken.
	CreatedAt int64
}
