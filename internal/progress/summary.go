package progress

import (
	"math"
	"sort"
	"time"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

// Streak returns the longest run of consecutive calendar dates with at least
// one completed task, including a currently open run at the most recent
// date. A day with zero completions breaks the run; so does a gap of more
// than one day between entries.
func Streak(history []model.ProgressEntry) int {
	if len(history) == 0 {
		return 0
	}
	sorted := make([]model.ProgressEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	longest := 0
	current := 0
	for i, entry := range sorted {
		if entry.TasksCompleted == 0 {
			current = 0
			continue
		}
		if current == 0 {
			current = 1
		} else if model.DaysBetween(entry.Date, sorted[i-1].Date) == 1 {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

// Summary aggregates the entries of one reporting period.
type Summary struct {
	From           model.Day
	To             model.Day
	AverageRate    float64
	HighestRate    float64
	TasksCompleted int
	TotalTasks     int
	ActiveDays     int
}

// PeriodSummary filters entries with date in [from, to] inclusive. The
// boundary computation belongs to the caller; see WeekRange and MonthRange.
func PeriodSummary(history []model.ProgressEntry, from, to model.Day) Summary {
	out := Summary{From: from, To: to}
	sum := 0.0
	for _, entry := range history {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		out.ActiveDays++
		sum += entry.CompletionRate
		if entry.CompletionRate > out.HighestRate {
			out.HighestRate = entry.CompletionRate
		}
		out.TasksCompleted += entry.TasksCompleted
		out.TotalTasks += entry.TotalTasks
	}
	if out.ActiveDays > 0 {
		out.AverageRate = sum / float64(out.ActiveDays)
	}
	return out
}

// WeekRange returns the Monday-Sunday week containing day.
func WeekRange(day model.Day) (model.Day, model.Day) {
	t := day.Time()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	start := t.AddDate(0, 0, -offset)
	return model.DayOf(start), model.DayOf(start.AddDate(0, 0, 6))
}

// MonthRange returns the first and last day of the calendar month
// containing day.
func MonthRange(day model.Day) (model.Day, model.Day) {
	t := day.Time()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return model.DayOf(first), model.DayOf(last)
}

// RoundRate converts a stored 0-100 rate to a whole percentage for display.
// Values are never rounded before storage.
func RoundRate(rate float64) int {
	return int(math.Round(rate))
}
