package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"simple", "2026-03-15", 1, "2026-04-15"},
		{"year rollover", "2026-12-10", 1, "2027-01-10"},
		{"clamp to February", "2026-01-31", 1, "2026-02-28"},
		{"clamp to leap February", "2028-01-31", 1, "2028-02-29"},
		{"clamp to 30-day month", "2026-03-31", 1, "2026-04-30"},
		{"quarter over year end", "2026-11-30", 3, "2027-02-28"},
		{"negative", "2026-03-31", -1, "2026-02-28"},
		{"negative across year", "2026-01-15", -2, "2025-11-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.start).AddMonths(tt.months)
			if got.String() != tt.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestAddYearsLeapDay(t *testing.T) {
	got := MustParse("2028-02-29").AddYears(1)
	if got.String() != "2029-02-28" {
		t.Errorf("AddYears = %s, want 2029-02-28", got)
	}
	got = MustParse("2028-02-29").AddYears(4)
	if got.String() != "2032-02-29" {
		t.Errorf("AddYears(4) = %s, want 2032-02-29", got)
	}
}

func TestDaysUntil(t *testing.T) {
	a := MustParse("2026-03-01")
	if n := a.DaysUntil(MustParse("2026-03-08")); n != 7 {
		t.Errorf("DaysUntil = %d, want 7", n)
	}
	if n := a.DaysUntil(MustParse("2026-02-27")); n != -2 {
		t.Errorf("DaysUntil = %d, want -2", n)
	}
	// Spans a US DST change; civil dates must not see the hour shift.
	if n := MustParse("2026-03-07").DaysUntil(MustParse("2026-03-09")); n != 2 {
		t.Errorf("DaysUntil across DST = %d, want 2", n)
	}
}

func TestFromTimeIgnoresOffset(t *testing.T) {
	loc := time.FixedZone("UTC-10", -10*3600)
	late := time.Date(2026, time.May, 1, 23, 30, 0, 0, loc)
	if got := FromTime(late).String(); got != "2026-05-01" {
		t.Errorf("FromTime = %s, want 2026-05-01", got)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("")
	if err != nil || !d.IsZero() {
		t.Errorf("Parse(\"\") = %v, %v; want zero, nil", d, err)
	}
	if _, err := Parse("2026-02-30"); err == nil {
		t.Error("expected error for 2026-02-30")
	}
	if _, err := Parse("03/01/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		Due Date `json:"due"`
	}

	b, err := json.Marshal(wrapper{Due: MustParse("2026-07-04")})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"due":"2026-07-04"}` {
		t.Errorf("Marshal = %s", b)
	}

	b, _ = json.Marshal(wrapper{})
	if string(b) != `{"due":null}` {
		t.Errorf("Marshal zero = %s", b)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"due":"2026-12-25"}`), &w); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if w.Due != MustParse("2026-12-25") {
		t.Errorf("Unmarshal = %v", w.Due)
	}
	if err := json.Unmarshal([]byte(`{"due":null}`), &w); err != nil || !w.Due.IsZero() {
		t.Errorf("Unmarshal null = %v, %v", w.Due, err)
	}
}

func TestScanValue(t *testing.T) {
	v, err := Date{}.Value()
	if err != nil || v != nil {
		t.Errorf("zero Value() = %v, %v; want nil, nil", v, err)
	}

	var d Date
	if err := d.Scan("2026-01-02"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if d.String() != "2026-01-02" {
		t.Errorf("Scan = %s", d)
	}
	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Errorf("Scan(nil) = %v, %v", d, err)
	}
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestShort(t *testing.T) {
	if got := MustParse("2026-03-07").Short(); got != "3/7/26" {
		t.Errorf("Short = %s, want 3/7/26", got)
	}
	if got := (Date{}).Short(); got != "N/A" {
		t.Errorf("Short zero = %s, want N/A", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2026-03-07", "2026-03-07", 0},
		{"2025-12-31", "2026-01-01", -1},
		{"2026-02-01", "2026-01-31", 1},
		{"2026-03-06", "2026-03-07", -1},
		{"2026-03-08", "2026-03-07", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := a.Before(b); got != (tt.want < 0) {
				t.Errorf("Before = %v", got)
			}
			if got := a.After(b); got != (tt.want > 0) {
				t.Errorf("After = %v", got)
			}
		})
	}
}
