package models

import (
	"fmt"

	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/shopspring/decimal"
)

// Frequency is a bill template's cadence.
type Frequency string

const (
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

// Frequencies lists every cadence from shortest to longest.
var Frequencies = []Frequency{FrequencyBiWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually}

// ParseFrequency validates s as a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range Frequencies {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// BillTemplate is a recurring bill the user pays on a fixed cadence.
type BillTemplate struct {
	// ID is the unique identifier for the template (UUID format).
	ID string

	// UserID is the owner.
	UserID string

	// Name is the bill's display name (e.g., "Netflix").
	Name string

	// DefaultAmount is the bill's magnitude. Always positive; it becomes a
	// negative transaction when added to a workbench.
	DefaultAmount decimal.Decimal

	// Frequency is how often the bill recurs.
	Frequency Frequency

	// NextDueDate is the upcoming due date; zero when unknown.
	NextDueDate calendar.Date

	// LastAdvancedAt is the due date most recently advanced past ("paid on").
	// Cleared whenever NextDueDate is edited by hand.
	LastAdvancedAt calendar.Date

	// CreatedAt is the Unix timestamp when the template was created.
	CreatedAt int64
}
