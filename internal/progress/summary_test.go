package progress

import (
	"testing"
	"time"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

func entriesFor(start model.Day, completed ...int) []model.ProgressEntry {
	out := make([]model.ProgressEntry, 0, len(completed))
	for i, c := range completed {
		out = append(out, model.NewProgressEntry(start.AddDays(i), c, 4))
	}
	return out
}

func TestStreakCountsLongestRun(t *testing.T) {
	// Completed counts over five consecutive days: 3, 0, 2, 1, 0.
	// The longest run of active days is the middle pair.
	history := entriesFor(model.Day("2024-01-01"), 3, 0, 2, 1, 0)
	if got := Streak(history); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}

func TestStreakIgnoresGapsBetweenDates(t *testing.T) {
	history := []model.ProgressEntry{
		model.NewProgressEntry("2024-01-01", 1, 2),
		model.NewProgressEntry("2024-01-02", 2, 2),
		// 2024-01-03 missing: the run is broken even though both
		// neighbours are active.
		model.NewProgressEntry("2024-01-04", 1, 2),
	}
	if got := Streak(history); got != 2 {
		t.Fatalf("expected streak 2 across the gap, got %d", got)
	}
}

func TestStreakEmptyHistory(t *testing.T) {
	if got := Streak(nil); got != 0 {
		t.Fatalf("expected 0 for empty history, got %d", got)
	}
}

func TestPeriodSummaryAverages(t *testing.T) {
	history := []model.ProgressEntry{
		model.NewProgressEntry("2024-01-01", 4, 4), // 100
		model.NewProgressEntry("2024-01-02", 2, 4), // 50
		model.NewProgressEntry("2024-01-03", 0, 4), // 0
		model.NewProgressEntry("2024-01-04", 3, 4), // 75
	}
	sum := PeriodSummary(history, "2024-01-01", "2024-01-04")
	if sum.AverageRate != 56.25 {
		t.Fatalf("expected average 56.25, got %v", sum.AverageRate)
	}
	if RoundRate(sum.AverageRate) != 56 {
		t.Fatalf("expected rounded average 56, got %d", RoundRate(sum.AverageRate))
	}
	if sum.HighestRate != 100 {
		t.Fatalf("expected highest 100, got %v", sum.HighestRate)
	}
	if sum.TasksCompleted != 9 || sum.TotalTasks != 16 {
		t.Fatalf("unexpected totals: %d/%d", sum.TasksCompleted, sum.TotalTasks)
	}
	if sum.ActiveDays != 3 {
		t.Fatalf("expected 3 active days, got %d", sum.ActiveDays)
	}
}

func TestPeriodSummaryFiltersInclusive(t *testing.T) {
	history := entriesFor(model.Day("2024-01-01"), 1, 1, 1, 1, 1)
	sum := PeriodSummary(history, "2024-01-02", "2024-01-04")
	if sum.ActiveDays != 3 {
		t.Fatalf("expected 3 days inside the range, got %d", sum.ActiveDays)
	}
}

func TestPeriodSummaryEmptyRange(t *testing.T) {
	history := entriesFor(model.Day("2024-01-01"), 1, 1)
	sum := PeriodSummary(history, "2024-06-01", "2024-06-07")
	if sum.AverageRate != 0 || sum.HighestRate != 0 || sum.ActiveDays != 0 {
		t.Fatalf("expected zero summary for empty range, got %+v", sum)
	}
}

func TestWeekRangeStartsOnMonday(t *testing.T) {
	// 2024-01-10 is a Wednesday.
	ref := time.Date(2024, time.January, 10, 15, 0, 0, 0, time.UTC)
	from, to := WeekRange(model.DayOf(ref))
	if from != "2024-01-08" {
		t.Fatalf("expected week to start 2024-01-08, got %s", from)
	}
	if to != "2024-01-14" {
		t.Fatalf("expected week to end 2024-01-14, got %s", to)
	}
}

func TestWeekRangeOnMondayAndSunday(t *testing.T) {
	monday := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	from, to := WeekRange(model.DayOf(monday))
	if from != "2024-01-08" || to != "2024-01-14" {
		t.Fatalf("unexpected range from Monday: %s..%s", from, to)
	}

	sunday := time.Date(2024, time.January, 14, 23, 0, 0, 0, time.UTC)
	from, to = WeekRange(model.DayOf(sunday))
	if from != "2024-01-08" || to != "2024-01-14" {
		t.Fatalf("unexpected range from Sunday: %s..%s", from, to)
	}
}

func TestMonthRangeCoversCalendarMonth(t *testing.T) {
	ref := time.Date(2024, time.February, 14, 9, 0, 0, 0, time.UTC)
	from, to := MonthRange(model.DayOf(ref))
	if from != "2024-02-01" {
		t.Fatalf("expected month to start 2024-02-01, got %s", from)
	}
	if to != "2024-02-29" {
		t.Fatalf("expected leap February to end 2024-02-29, got %s", to)
	}
}

func TestRoundRateHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{56.25, 56},
		{56.5, 57},
		{0, 0},
		{100, 100},
		{33.333333, 33},
	}
	for _, tc := range cases {
		if got := RoundRate(tc.in); got != tc.want {
			t.Fatalf("RoundRate(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
