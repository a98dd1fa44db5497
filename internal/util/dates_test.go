package util

import (
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	testCases := []string{
		"2026-01-01",
		"2026-12-31",
		"2027-06-15",
	}

	for _, date := range testCases {
		if _, err := ParseDate(date); err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"2026/01/01",
		"01-01-2026",
		"2026-1-1",
		"not-a-date",
		"2026-13-01",
		"2026-01-32",
	}

	for _, date := range testCases {
		if _, err := ParseDate(date); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", date)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-03-09" {
		t.Errorf("FormatDate() = %q, want 2026-03-09", got)
	}
}
