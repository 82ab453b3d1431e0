package calculator

import (
	"testing"
	"time"

	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/mmynk/cashbench/internal/models"
	"github.com/shopspring/decimal"
)

func date(s string) calendar.Date {
	return calendar.MustParse(s)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name string
		due  string
		freq models.Frequency
		want string
	}{
		{"bi-weekly", "2026-03-10", models.FrequencyBiWeekly, "2026-03-24"},
		{"bi-weekly over month end", "2026-01-25", models.FrequencyBiWeekly, "2026-02-08"},
		{"bi-weekly over year end", "2026-12-25", models.FrequencyBiWeekly, "2027-01-08"},
		{"monthly", "2026-03-10", models.FrequencyMonthly, "2026-04-10"},
		{"monthly year rollover", "2026-12-15", models.FrequencyMonthly, "2027-01-15"},
		{"monthly Jan 31 clamps to Feb 28", "2026-01-31", models.FrequencyMonthly, "2026-02-28"},
		{"monthly Jan 31 clamps to Feb 29 in leap year", "2028-01-31", models.FrequencyMonthly, "2028-02-29"},
		{"monthly Mar 31 clamps to Apr 30", "2026-03-31", models.FrequencyMonthly, "2026-04-30"},
		{"quarterly", "2026-01-15", models.FrequencyQuarterly, "2026-04-15"},
		{"quarterly Nov 30 clamps to Feb 28", "2026-11-30", models.FrequencyQuarterly, "2027-02-28"},
		{"quarterly Aug 31 clamps to Nov 30", "2026-08-31", models.FrequencyQuarterly, "2026-11-30"},
		{"annually", "2026-06-01", models.FrequencyAnnually, "2027-06-01"},
		{"annually Feb 29 to Feb 28", "2028-02-29", models.FrequencyAnnually, "2029-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDueDate(date(tt.due), tt.freq)
			if err != nil {
				t.Fatalf("NextDueDate() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("NextDueDate(%s, %s) = %s, want %s", tt.due, tt.freq, got, tt.want)
			}
		})
	}
}

func TestNextDueDate_UnknownFrequency(t *testing.T) {
	if _, err := NextDueDate(date("2026-01-01"), "weekly"); err == nil {
		t.Error("expected error for unknown frequency")
	}
}

func TestNextDueDate_MonthEndNeverSpills(t *testing.T) {
	// Every month-end in a leap and a non-leap year lands in the very next month.
	for _, year := range []int{2026, 2028} {
		for m := 1; m <= 12; m++ {
			month := time.Month(m)
			last := calendar.New(year, month, calendar.DaysIn(year, month))
			next, err := NextDueDate(last, models.FrequencyMonthly)
			if err != nil {
				t.Fatalf("NextDueDate: %v", err)
			}
			wantMonth := last.AddMonths(1)
			if next.Month != wantMonth.Month || next.Year != wantMonth.Year {
				t.Errorf("%s advanced to %s, spilled out of %d-%02d", last, next, wantMonth.Year, wantMonth.Month)
			}
			if limit := calendar.DaysIn(next.Year, next.Month); next.Day != min(last.Day, limit) {
				t.Errorf("%s advanced to %s, want day %d", last, next, min(last.Day, limit))
			}
		}
	}
}

func TestAdvance(t *testing.T) {
	tmpl := models.BillTemplate{
		ID:          "t1",
		Name:        "Rent",
		Frequency:   models.FrequencyMonthly,
		NextDueDate: date("2026-01-31"),
	}

	adv, ok := Advance(tmpl)
	if !ok {
		t.Fatal("Advance() ok = false, want true")
	}
	if adv.TemplateID != "t1" {
		t.Errorf("TemplateID = %q, want t1", adv.TemplateID)
	}
	if adv.NextDueDate.String() != "2026-02-28" {
		t.Errorf("NextDueDate = %s, want 2026-02-28", adv.NextDueDate)
	}
	if adv.LastAdvancedAt.String() != "2026-01-31" {
		t.Errorf("LastAdvancedAt = %s, want the previous due date 2026-01-31", adv.LastAdvancedAt)
	}

	applied := adv.Apply(tmpl)
	if applied.NextDueDate != adv.NextDueDate || applied.LastAdvancedAt != adv.LastAdvancedAt {
		t.Errorf("Apply() = %+v", applied)
	}
	if tmpl.NextDueDate.String() != "2026-01-31" {
		t.Error("Apply() mutated its input")
	}
}

func TestAdvance_NoDueDateIsNoop(t *testing.T) {
	tmpl := models.BillTemplate{ID: "t1", Frequency: models.FrequencyMonthly}
	if _, ok := Advance(tmpl); ok {
		t.Error("Advance() ok = true for template without due date")
	}
}

func TestAdvance_RoundTrip(t *testing.T) {
	tests := []struct {
		freq models.Frequency
		due  string
		n    int
		want func(start calendar.Date, n int) calendar.Date
	}{
		{models.FrequencyBiWeekly, "2026-01-05", 10, func(s calendar.Date, n int) calendar.Date { return s.AddDays(14 * n) }},
		{models.FrequencyMonthly, "2026-01-15", 14, func(s calendar.Date, n int) calendar.Date { return s.AddMonths(n) }},
		{models.FrequencyQuarterly, "2026-02-10", 9, func(s calendar.Date, n int) calendar.Date { return s.AddMonths(3 * n) }},
		{models.FrequencyAnnually, "2026-07-04", 5, func(s calendar.Date, n int) calendar.Date { return s.AddYears(n) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			start := date(tt.due)
			tmpl := models.BillTemplate{ID: "x", Frequency: tt.freq, NextDueDate: start}
			for i := 0; i < tt.n; i++ {
				adv, ok := Advance(tmpl)
				if !ok {
					t.Fatalf("Advance() failed at step %d", i)
				}
				tmpl = adv.Apply(tmpl)
			}
			want := tt.want(start, tt.n)
			if tmpl.NextDueDate != want {
				t.Errorf("after %d advances: %s, want %s", tt.n, tmpl.NextDueDate, want)
			}
			if got, wantDays := start.DaysUntil(tmpl.NextDueDate), start.DaysUntil(want); got != wantDays {
				t.Errorf("day difference = %d, want %d", got, wantDays)
			}
		})
	}
}

func TestApplyTemplateEdit(t *testing.T) {
	current := models.BillTemplate{
		ID:             "t1",
		Name:           "Internet",
		DefaultAmount:  decimal.NewFromInt(60),
		Frequency:      models.FrequencyMonthly,
		NextDueDate:    date("2026-05-01"),
		LastAdvancedAt: date("2026-04-01"),
	}

	t.Run("changing due date clears last advanced", func(t *testing.T) {
		d := date("2026-05-03")
		got := ApplyTemplateEdit(current, TemplateEdit{NextDueDate: &d})
		if got.NextDueDate != d {
			t.Errorf("NextDueDate = %s, want %s", got.NextDueDate, d)
		}
		if !got.LastAdvancedAt.IsZero() {
			t.Errorf("LastAdvancedAt = %s, want cleared", got.LastAdvancedAt)
		}
	})

	t.Run("same due date keeps last advanced", func(t *testing.T) {
		d := date("2026-05-01")
		name := "Fiber"
		got := ApplyTemplateEdit(current, TemplateEdit{Name: &name, NextDueDate: &d})
		if got.LastAdvancedAt != current.LastAdvancedAt {
			t.Errorf("LastAdvancedAt = %s, want %s", got.LastAdvancedAt, current.LastAdvancedAt)
		}
		if got.Name != "Fiber" {
			t.Errorf("Name = %q, want Fiber", got.Name)
		}
	})

	t.Run("clearing due date clears last advanced", func(t *testing.T) {
		var none calendar.Date
		got := ApplyTemplateEdit(current, TemplateEdit{NextDueDate: &none})
		if !got.NextDueDate.IsZero() || !got.LastAdvancedAt.IsZero() {
			t.Errorf("got %+v, want both dates cleared", got)
		}
	})

	t.Run("amount is stored as magnitude", func(t *testing.T) {
		amt := decimal.NewFromInt(-75)
		got := ApplyTemplateEdit(current, TemplateEdit{DefaultAmount: &amt})
		if !got.DefaultAmount.Equal(decimal.NewFromInt(75)) {
			t.Errorf("DefaultAmount = %s, want 75", got.DefaultAmount)
		}
		if got.LastAdvancedAt != current.LastAdvancedAt {
			t.Error("amount edit touched LastAdvancedAt")
		}
	})
}

func TestIsDueSoon(t *testing.T) {
	today := date("2026-10-18")
	tests := []struct {
		name string
		due  calendar.Date
		want bool
	}{
		{"today", today, true},
		{"yesterday", today.AddDays(-1), false},
		{"in three days", today.AddDays(3), true},
		{"in four days", today.AddDays(4), false},
		{"absent", calendar.Date{}, false},
		{"long past", today.AddDays(-40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDueSoon(tt.due, today, DefaultDueSoonHorizon); got != tt.want {
				t.Errorf("IsDueSoon(%s) = %v, want %v", tt.due, got, tt.want)
			}
		})
	}
}

func TestDueSoon(t *testing.T) {
	today := date("2026-10-18")
	templates := []models.BillTemplate{
		{Name: "Later", NextDueDate: date("2026-10-30")},
		{Name: "Water", NextDueDate: date("2026-10-21")},
		{Name: "Gas", NextDueDate: date("2026-10-18")},
		{Name: "Undated"},
		{Name: "Missed", NextDueDate: date("2026-10-17")},
	}

	got := DueSoon(templates, today, DefaultDueSoonHorizon)
	if len(got) != 2 {
		t.Fatalf("DueSoon() returned %d templates, want 2", len(got))
	}
	if got[0].Name != "Gas" || got[1].Name != "Water" {
		t.Errorf("DueSoon() = [%s %s], want [Gas Water]", got[0].Name, got[1].Name)
	}
}

func templateNames(ts []models.BillTemplate) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByDueDate(t *testing.T) {
	templates := []models.BillTemplate{
		{Name: "none-b"},
		{Name: "power", NextDueDate: date("2026-02-01")},
		{Name: "Rent", NextDueDate: date("2026-01-01")},
		{Name: "none-a"},
		{Name: "alarm", NextDueDate: date("2026-02-01")},
	}

	got := templateNames(SortByDueDate(templates))
	want := []string{"Rent", "alarm", "power", "none-a", "none-b"}
	if !equalStrings(got, want) {
		t.Errorf("SortByDueDate() = %v, want %v", got, want)
	}
	if templates[0].Name != "none-b" {
		t.Error("SortByDueDate() mutated its input")
	}
}

func TestSortTemplates(t *testing.T) {
	templates := []models.BillTemplate{
		{Name: "Phone", DefaultAmount: decimal.NewFromInt(40), Frequency: models.FrequencyMonthly, NextDueDate: date("2026-03-05")},
		{Name: "Car", DefaultAmount: decimal.NewFromInt(300), Frequency: models.FrequencyQuarterly},
		{Name: "Gym", DefaultAmount: decimal.NewFromInt(25), Frequency: models.FrequencyBiWeekly, NextDueDate: date("2026-03-01")},
		{Name: "Domain", DefaultAmount: decimal.NewFromInt(15), Frequency: models.FrequencyAnnually, NextDueDate: date("2026-09-09")},
	}

	tests := []struct {
		field SortField
		order SortOrder
		want  []string
	}{
		{SortFieldDueDate, Ascending, []string{"Gym", "Phone", "Domain", "Car"}},
		{SortFieldDueDate, Descending, []string{"Domain", "Phone", "Gym", "Car"}},
		{SortFieldName, Ascending, []string{"Car", "Domain", "Gym", "Phone"}},
		{SortFieldName, Descending, []string{"Phone", "Gym", "Domain", "Car"}},
		{SortFieldAmount, Ascending, []string{"Domain", "Gym", "Phone", "Car"}},
		{SortFieldAmount, Descending, []string{"Car", "Phone", "Gym", "Domain"}},
		{SortFieldFrequency, Ascending, []string{"Gym", "Phone", "Car", "Domain"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.field)+"_"+string(tt.order), func(t *testing.T) {
			got := templateNames(SortTemplates(templates, tt.field, tt.order))
			if !equalStrings(got, tt.want) {
				t.Errorf("SortTemplates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterAnnual(t *testing.T) {
	templates := []models.BillTemplate{
		{Name: "Rent", Frequency: models.FrequencyMonthly},
		{Name: "Domain", Frequency: models.FrequencyAnnually},
	}
	if got := FilterAnnual(templates, false); len(got) != 1 || got[0].Name != "Rent" {
		t.Errorf("FilterAnnual(hide) = %v", templateNames(got))
	}
	if got := FilterAnnual(templates, true); len(got) != 2 {
		t.Errorf("FilterAnnual(show) = %v", templateNames(got))
	}
}

func TestTemplateToTransaction(t *testing.T) {
	tmpl := models.BillTemplate{
		UserID:        "u1",
		Name:          "Netflix",
		DefaultAmount: decimal.RequireFromString("15.49"),
		NextDueDate:   date("2026-11-02"),
	}

	txn := TemplateToTransaction(tmpl, "cc_1")
	if !txn.Amount.Equal(decimal.RequireFromString("-15.49")) {
		t.Errorf("Amount = %s, want -15.49", txn.Amount)
	}
	if txn.Description != "Netflix" || txn.Tag != "cc_1" || txn.UserID != "u1" {
		t.Errorf("unexpected transaction %+v", txn)
	}
	if txn.Status != models.StatusPlanning || !txn.IsInCalc {
		t.Errorf("Status = %s, IsInCalc = %v; want planning, true", txn.Status, txn.IsInCalc)
	}
	if txn.DueDate != tmpl.NextDueDate {
		t.Errorf("DueDate = %s, want %s", txn.DueDate, tmpl.NextDueDate)
	}
}
