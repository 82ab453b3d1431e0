package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/cashbench/internal/calendar"
)

// ErrInvalidSortField is returned for an unknown sort field or order.
var ErrInvalidSortField = errors.New("invalid sort field")

// SortField selects the key for SortTemplates and SortTransactions.
type SortField string

const (
	SortFieldName      SortField = "name"
	SortFieldAmount    SortField = "amount"
	SortFieldDueDate   SortField = "due_date"
	SortFieldFrequency SortField = "frequency" // bill templates only
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortField validates s. An empty string means due date, the default
// view of both the bill list and the workbench.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(s)); f {
	case "":
		return SortFieldDueDate, nil
	case SortFieldName, SortFieldAmount, SortFieldDueDate, SortFieldFrequency:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
}

// ParseSortOrder validates s. An empty string means ascending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(s)); o {
	case "":
		return Ascending, nil
	case Ascending, Descending:
		return o, nil
	}
	return "", fmt.Errorf("%w: order %q", ErrInvalidSortField, s)
}

// sign returns the multiplier applied to a primary comparison.
func (o SortOrder) sign() int {
	if o == Descending {
		return -1
	}
	return 1
}

// compareDueDates orders two optional dates. Absent dates always come last,
// independent of order: only the comparison between two present dates is
// flipped for descending.
func compareDueDates(a, b calendar.Date, order SortOrder) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return order.sign() * a.Compare(b)
}

// compareNames is the tie-break for every sort entry point: plain byte-wise
// (case-sensitive) string order, never flipped by the sort order.
func compareNames(a, b string) int {
	return strings.Compare(a, b)
}
