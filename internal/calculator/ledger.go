package calculator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when an amount cannot be parsed as a finite number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidIndex is returned by Reorder for out-of-range positions.
	ErrInvalidIndex = errors.New("invalid index")
)

// ParseAmount parses user input such as "1,234.56" or "-40". Empty,
// unparsable and non-finite input is rejected so that no mutation is applied.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	clean = strings.TrimPrefix(clean, "$")
	if clean == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// SignedAmount returns +|magnitude| for income and -|magnitude| for expenses.
func SignedAmount(magnitude decimal.Decimal, isIncome bool) decimal.Decimal {
	if isIncome {
		return magnitude.Abs()
	}
	return magnitude.Abs().Neg()
}

// Reorder moves the element at from to position to and returns the new order.
// ids is not modified. Callers persist sort_order = index for the result.
func Reorder(ids []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(ids) || to < 0 || to >= len(ids) {
		return nil, fmt.Errorf("%w: move %d -> %d in %d items", ErrInvalidIndex, from, to, len(ids))
	}
	out := slices.Clone(ids)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, moved)
	return out, nil
}

// NextSortOrder returns the position for a row appended after existing ones.
func NextSortOrder(orders []int) int {
	if len(orders) == 0 {
		return 1
	}
	return slices.Max(orders) + 1
}
