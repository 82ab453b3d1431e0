package calculator

import (
	"slices"

	"github.com/mmynk/cashbench/internal/models"
	"github.com/shopspring/decimal"
)

// Totals are the figures a workbench displays.
type Totals struct {
	Income           decimal.Decimal // sum of positive included amounts
	Expenses         decimal.Decimal // sum of negative included amounts; stays negative
	ProjectedBalance decimal.Decimal
}

// NetWorth summarizes a set of accounts.
type NetWorth struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
}

// ComputeTotals aggregates the transactions that are in the calculation.
//
// Algorithm:
//   - Skip entries with IsInCalc = false (they stay visible but never count)
//   - income = sum(amount > 0), expenses = sum(amount < 0)
//   - projected = starting + income + expenses
//
// Zero amounts fall into neither bucket.
func ComputeTotals(starting decimal.Decimal, txns []models.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range txns {
		if !t.IsInCalc {
			continue
		}
		switch t.Amount.Sign() {
		case 1:
			income = income.Add(t.Amount)
		case -1:
			expenses = expenses.Add(t.Amount)
		}
	}
	return Totals{
		Income:           income,
		Expenses:         expenses,
		ProjectedBalance: starting.Add(income).Add(expenses),
	}
}

// ComputeNetWorth totals assets and liabilities across all accounts.
func ComputeNetWorth(accounts []models.Account) NetWorth {
	assets := decimal.Zero
	liabilities := decimal.Zero
	for _, a := range accounts {
		if a.IsLiability {
			liabilities = liabilities.Add(a.CurrentBalance)
		} else {
			assets = assets.Add(a.CurrentBalance)
		}
	}
	return NetWorth{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         assets.Sub(liabilities),
	}
}

// ComputeWorkbenchNetWorth is ComputeNetWorth over the accounts whose IDs are
// not in excludedIDs. This is the main workbench's starting balance.
func ComputeWorkbenchNetWorth(accounts []models.Account, excludedIDs []string) NetWorth {
	return ComputeNetWorth(includedAccounts(accounts, excludedIDs))
}

// ComputeSafeToSpend returns liquid cash minus fixed monthly obligations.
// Liabilities are left out entirely (not subtracted) and annual bills are not
// part of the monthly figure.
func ComputeSafeToSpend(accounts []models.Account, bills []models.BillTemplate) decimal.Decimal {
	cash := decimal.Zero
	for _, a := range accounts {
		if !a.IsLiability {
			cash = cash.Add(a.CurrentBalance)
		}
	}
	return cash.Sub(MonthlyExposure(bills))
}

// MonthlyExposure sums the default amounts of all non-annual bills.
func MonthlyExposure(bills []models.BillTemplate) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bills {
		if b.Frequency != models.FrequencyAnnually {
			total = total.Add(b.DefaultAmount)
		}
	}
	return total
}

// PartitionByTag returns the transactions on the workbench identified by tag.
// An empty tag selects only untagged transactions, so the main workbench is
// the complement of every tagged one rather than a catch-all.
func PartitionByTag(txns []models.Transaction, tag string) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Tag == tag {
			out = append(out, t)
		}
	}
	return out
}

// SortTransactions returns a sorted copy of txns. SortFieldName sorts on the
// description. Entries without a due date always sort last for
// SortFieldDueDate, in either order.
func SortTransactions(txns []models.Transaction, field SortField, order SortOrder) []models.Transaction {
	out := slices.Clone(txns)
	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		var c int
		switch field {
		case SortFieldName:
			c = order.sign() * compareNames(a.Description, b.Description)
		case SortFieldAmount:
			c = order.sign() * a.Amount.Cmp(b.Amount)
		default:
			c = compareDueDates(a.DueDate, b.DueDate, order)
		}
		if c != 0 {
			return c
		}
		return compareNames(a.Description, b.Description)
	})
	return out
}

// StartingBalance returns the balance a workbench projects from.
//
// The main workbench (no linked account) starts from the workbench net worth.
// A workbench linked to an account starts from that account's balance,
// negated when the account is a liability. An unknown account yields zero.
func StartingBalance(cfg models.WorkbenchConfig, accounts []models.Account, excludedIDs []string) decimal.Decimal {
	if cfg.LinkedAccountID == "" {
		return ComputeWorkbenchNetWorth(accounts, excludedIDs).NetWorth
	}
	for _, a := range accounts {
		if a.ID != cfg.LinkedAccountID {
			continue
		}
		if a.IsLiability {
			return a.CurrentBalance.Abs().Neg()
		}
		return a.CurrentBalance
	}
	return decimal.Zero
}

// WithWorkbenchInclusion returns copies of accounts with IncludeInWorkbench
// set from the exclusion list.
func WithWorkbenchInclusion(accounts []models.Account, excludedIDs []string) []models.Account {
	excluded := idSet(excludedIDs)
	out := slices.Clone(accounts)
	for i := range out {
		out[i].IncludeInWorkbench = !excluded[out[i].ID]
	}
	return out
}

func includedAccounts(accounts []models.Account, excludedIDs []string) []models.Account {
	excluded := idSet(excludedIDs)
	out := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if !excluded[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
