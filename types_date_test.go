package grana

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDate_normalizesOverflow(t *testing.T) {
	testCases := []struct {
		name string
		got  Date
		want Date
	}{
		{"in range", NewDate(2025, time.July, 15), Date{2025, time.July, 15}},
		{"day past a 28-day february", NewDate(2025, time.February, 30), Date{2025, time.March, 2}},
		{"day past a 30-day month", NewDate(2025, time.April, 31), Date{2025, time.May, 1}},
		{"month thirteen", NewDate(2025, time.Month(13), 1), Date{2026, time.January, 1}},
		{"leap february", NewDate(2024, time.February, 29), Date{2024, time.February, 29}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %s, want %s", tc.got, tc.want)
			}
		})
	}
}

func TestDate_AddMonths(t *testing.T) {
	testCases := []struct {
		start  Date
		months int
		want   Date
	}{
		{NewDate(2025, time.January, 15), 1, NewDate(2025, time.February, 15)},
		{NewDate(2025, time.January, 31), 1, NewDate(2025, time.March, 3)}, // no february 31
		{NewDate(2025, time.October, 31), 1, NewDate(2025, time.December, 1)},
		{NewDate(2025, time.November, 30), 3, NewDate(2026, time.March, 2)},
		{NewDate(2025, time.June, 10), 0, NewDate(2025, time.June, 10)},
	}
	for _, tc := range testCases {
		if got := tc.start.AddMonths(tc.months); got != tc.want {
			t.Errorf("%s.AddMonths(%d) = %s, want %s", tc.start, tc.months, got, tc.want)
		}
	}
}

func TestDate_WithDay(t *testing.T) {
	d := NewDate(2025, time.April, 10)
	if got, want := d.WithDay(5), NewDate(2025, time.April, 5); got != want {
		t.Errorf("WithDay(5) = %s, want %s", got, want)
	}
	if got, want := d.WithDay(31), NewDate(2025, time.May, 1); got != want {
		t.Errorf("WithDay(31) = %s, want %s", got, want)
	}
}

func TestDate_MonthKey(t *testing.T) {
	if got := NewDate(2025, time.February, 5).MonthKey(); got != "2025-02" {
		t.Errorf("MonthKey() = %q, want 2025-02", got)
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: NewDate(2025, time.July, 1)},
		{in: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{in: " 2025-12-31 ", want: NewDate(2025, time.December, 31)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) accepted an invalid date", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", tc.in, err)
		} else if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.January, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2025-01-05"` {
		t.Errorf("Marshal = %s, want \"2025-01-05\"", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
