package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-01-02")
	if err != nil {
		t.Fatalf("expected valid day, got error: %v", err)
	}
	if day != Day("2024-01-02") {
		t.Fatalf("unexpected day: %q", day)
	}

	if _, err := ParseDay("01/02/2024"); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got: %v", err)
	}
	if _, err := ParseDay(""); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay for empty string, got: %v", err)
	}
}

func TestDayOrdering(t *testing.T) {
	a := Day("2024-01-01")
	b := Day("2024-01-02")
	if !a.Before(b) {
		t.Fatal("expected 2024-01-01 before 2024-01-02")
	}
	if !b.After(a) {
		t.Fatal("expected 2024-01-02 after 2024-01-01")
	}
	if a.Before(a) || a.After(a) {
		t.Fatal("a day must not order before or after itself")
	}
}

func TestDayArithmetic(t *testing.T) {
	cases := []struct {
		from Day
		n    int
		want Day
	}{
		{Day("2024-01-31"), 1, Day("2024-02-01")},
		{Day("2024-02-28"), 1, Day("2024-02-29")}, // leap year
		{Day("2024-12-31"), 1, Day("2025-01-01")},
		{Day("2024-01-01"), -1, Day("2023-12-31")},
	}
	for _, tc := range cases {
		if got := tc.from.AddDays(tc.n); got != tc.want {
			t.Fatalf("%s + %d days: expected %s, got %s", tc.from, tc.n, tc.want, got)
		}
	}

	if diff := DaysBetween(Day("2024-01-01"), Day("2024-01-05")); diff != 4 {
		t.Fatalf("expected 4 days between, got %d", diff)
	}
	if diff := DaysBetween(Day("2024-01-05"), Day("2024-01-01")); diff != -4 {
		t.Fatalf("expected -4 days between, got %d", diff)
	}
}

func TestDayOf(t *testing.T) {
	at := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	if got := DayOf(at); got != Day("2024-03-15") {
		t.Fatalf("expected 2024-03-15, got %s", got)
	}
}
