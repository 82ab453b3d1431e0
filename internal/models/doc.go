// Package models defines the core domain models for cashbench.
//
// # Entities
//
//   - Account: a balance the user holds (asset) or owes (liability)
//   - BillTemplate: a recurring bill with a cadence and a next due date
//   - Transaction: a ledger entry on one workbench, income or expense
//   - Capture: a saved snapshot of a workbench's projected balance
//   - Note: the user's free-form scratch pad
//   - User: a registered account owner
//
// Every entity except User carries a UserID. Storage queries are always scoped
// by it, so the calculation code only ever sees one user's rows.
//
// Money is github.com/shopspring/decimal; dates without a time of day are
// calendar.Date, whose zero value means "no date".
package models
