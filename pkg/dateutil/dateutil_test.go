package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		at    time.Time
		want  int
	}{
		{"birthday already passed this year", date(1990, 3, 15), date(2025, 6, 1), 35},
		{"birthday later this year", date(1990, 9, 15), date(2025, 6, 1), 34},
		{"on the birthday itself", date(1990, 6, 1), date(2025, 6, 1), 35},
		{"day before the birthday", date(1990, 6, 2), date(2025, 6, 1), 34},
		{"same year", date(2025, 1, 1), date(2025, 12, 31), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.birth, tt.at); got != tt.want {
				t.Fatalf("Age() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWholeMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same month", date(2025, 4, 1), date(2025, 4, 28), 0},
		{"one month, day ignored", date(2025, 4, 30), date(2025, 5, 1), 1},
		{"across a year boundary", date(2024, 11, 10), date(2025, 2, 3), 3},
		{"several years", date(2022, 6, 1), date(2025, 6, 1), 36},
		{"reversed dates are negative", date(2025, 5, 1), date(2025, 3, 1), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeMonthsBetween(tt.from, tt.to); got != tt.want {
				t.Fatalf("WholeMonthsBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("1990-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 1990 || d.Month() != time.March || d.Day() != 15 {
		t.Fatalf("unexpected date: %v", d)
	}

	if _, err := ParseISODate("15/03/1990"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestFormatISODateRoundTrip(t *testing.T) {
	d := date(2025, 8, 30)
	got, err := ParseISODate(FormatISODate(d))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(d) {
		t.Fatalf("round trip mismatch: %v != %v", got, d)
	}
}
