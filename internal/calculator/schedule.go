package calculator

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/mmynk/cashbench/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultDueSoonHorizon is the look-ahead window, in days, for IsDueSoon.
const DefaultDueSoonHorizon = 3

// ErrUnknownFrequency is returned when a template's cadence is not recognized.
var ErrUnknownFrequency = errors.New("unknown frequency")

// Advancement describes the mutation produced by advancing a bill template.
// The caller persists both fields together.
type Advancement struct {
	TemplateID     string
	NextDueDate    calendar.Date
	LastAdvancedAt calendar.Date // the due date that was advanced past
}

// NextDueDate moves due forward by one cadence interval.
//
//   - bi-weekly: +14 days
//   - monthly: +1 month, day clamped to the target month's length
//   - quarterly: +3 months, same clamping
//   - annually: +1 year, Feb 29 becomes Feb 28 in non-leap years
func NextDueDate(due calendar.Date, freq models.Frequency) (calendar.Date, error) {
	switch freq {
	case models.FrequencyBiWeekly:
		return due.AddDays(14), nil
	case models.FrequencyMonthly:
		return due.AddMonths(1), nil
	case models.FrequencyQuarterly:
		return due.AddMonths(3), nil
	case models.FrequencyAnnually:
		return due.AddYears(1), nil
	}
	return calendar.Date{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, freq)
}

// Advance computes the next due date for tmpl and records the date it moved
// past. It reports false, and leaves the caller nothing to apply, when the
// template has no due date or an unknown frequency.
func Advance(tmpl models.BillTemplate) (Advancement, bool) {
	if tmpl.NextDueDate.IsZero() {
		return Advancement{}, false
	}
	next, err := NextDueDate(tmpl.NextDueDate, tmpl.Frequency)
	if err != nil {
		return Advancement{}, false
	}
	return Advancement{
		TemplateID:     tmpl.ID,
		NextDueDate:    next,
		LastAdvancedAt: tmpl.NextDueDate,
	}, true
}

// Apply returns a copy of tmpl with the advancement applied.
func (a Advancement) Apply(tmpl models.BillTemplate) models.BillTemplate {
	tmpl.NextDueDate = a.NextDueDate
	tmpl.LastAdvancedAt = a.LastAdvancedAt
	return tmpl
}

// TemplateEdit is a manual change to a bill template. Nil fields are left
// unchanged; a non-nil zero NextDueDate clears the due date.
type TemplateEdit struct {
	Name          *string
	DefaultAmount *decimal.Decimal
	Frequency     *models.Frequency
	NextDueDate   *calendar.Date
}

// ApplyTemplateEdit returns current with edit applied. If the edit sets the
// due date to a different value, LastAdvancedAt is cleared: it must only ever
// hold a date that was actually advanced past.
func ApplyTemplateEdit(current models.BillTemplate, edit TemplateEdit) models.BillTemplate {
	out := current
	if edit.Name != nil {
		out.Name = *edit.Name
	}
	if edit.DefaultAmount != nil {
		out.DefaultAmount = edit.DefaultAmount.Abs()
	}
	if edit.Frequency != nil {
		out.Frequency = *edit.Frequency
	}
	if edit.NextDueDate != nil && *edit.NextDueDate != current.NextDueDate {
		out.NextDueDate = *edit.NextDueDate
		out.LastAdvancedAt = calendar.Date{}
	}
	return out
}

// IsDueSoon reports whether due falls between today and today+horizonDays,
// inclusive. Absent or past dates are never due soon.
func IsDueSoon(due, today calendar.Date, horizonDays int) bool {
	if due.IsZero() {
		return false
	}
	diff := today.DaysUntil(due)
	return diff >= 0 && diff <= horizonDays
}

// DueSoon returns the templates due within the horizon, earliest first.
func DueSoon(templates []models.BillTemplate, today calendar.Date, horizonDays int) []models.BillTemplate {
	var out []models.BillTemplate
	for _, t := range templates {
		if IsDueSoon(t.NextDueDate, today, horizonDays) {
			out = append(out, t)
		}
	}
	return SortByDueDate(out)
}

// SortByDueDate returns templates ordered by due date ascending, undated last,
// ties broken by name.
func SortByDueDate(templates []models.BillTemplate) []models.BillTemplate {
	return SortTemplates(templates, SortFieldDueDate, Ascending)
}

var frequencyRank = map[models.Frequency]int{
	models.FrequencyBiWeekly:  0,
	models.FrequencyMonthly:   1,
	models.FrequencyQuarterly: 2,
	models.FrequencyAnnually:  3,
}

// SortTemplates returns a sorted copy of templates. Templates without a due
// date sort last for SortFieldDueDate in either order. Ties are broken by name.
func SortTemplates(templates []models.BillTemplate, field SortField, order SortOrder) []models.BillTemplate {
	out := slices.Clone(templates)
	slices.SortStableFunc(out, func(a, b models.BillTemplate) int {
		var c int
		switch field {
		case SortFieldName:
			c = order.sign() * compareNames(a.Name, b.Name)
		case SortFieldAmount:
			c = order.sign() * a.DefaultAmount.Cmp(b.DefaultAmount)
		case SortFieldFrequency:
			c = order.sign() * cmp.Compare(frequencyRank[a.Frequency], frequencyRank[b.Frequency])
		default:
			c = compareDueDates(a.NextDueDate, b.NextDueDate, order)
		}
		if c != 0 {
			return c
		}
		return compareNames(a.Name, b.Name)
	})
	return out
}

// FilterAnnual drops annual templates unless showAnnual is set.
func FilterAnnual(templates []models.BillTemplate, showAnnual bool) []models.BillTemplate {
	if showAnnual {
		return slices.Clone(templates)
	}
	out := make([]models.BillTemplate, 0, len(templates))
	for _, t := range templates {
		if t.Frequency != models.FrequencyAnnually {
			out = append(out, t)
		}
	}
	return out
}

// TemplateToTransaction builds the planning-stage expense that "add to
// workbench" inserts for tmpl. An empty tag targets the main workbench.
func TemplateToTransaction(tmpl models.BillTemplate, tag string) models.Transaction {
	return models.Transaction{
		UserID:      tmpl.UserID,
		Description: tmpl.Name,
		Amount:      tmpl.DefaultAmount.Abs().Neg(),
		Status:      models.StatusPlanning,
		IsInCalc:    true,
		DueDate:     tmpl.NextDueDate,
		Tag:         tag,
	}
}
