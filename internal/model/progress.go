package model

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeTasks      = errors.New("model: task counts must be non-negative")
	ErrCompletedOverTotal = errors.New("model: tasks completed exceeds total tasks")
)

// ProgressEntry is one progress record per calendar date. CompletionRate is
// always on the 0-100 scale; rounding happens only at presentation time.
type ProgressEntry struct {
	Date           Day     `json:"date"`
	CompletionRate float64 `json:"completionRate"`
	TasksCompleted int     `json:"tasksCompleted"`
	TotalTasks     int     `json:"totalTasks"`
}

// NewProgressEntry derives the completion rate from the task counts. A zero
// total is treated as one task so the rate stays defined (and zero).
func NewProgressEntry(date Day, completed, total int) ProgressEntry {
	divisor := total
	if divisor <= 0 {
		divisor = 1
	}
	return ProgressEntry{
		Date:           date,
		CompletionRate: 100 * float64(completed) / float64(divisor),
		TasksCompleted: completed,
		TotalTasks:     total,
	}
}

func (e ProgressEntry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if e.TasksCompleted < 0 || e.TotalTasks < 0 {
		return ErrNegativeTasks
	}
	if e.TasksCompleted > e.TotalTasks {
		return fmt.Errorf("%w: %d > %d", ErrCompletedOverTotal, e.TasksCompleted, e.TotalTasks)
	}
	if e.CompletionRate < 0 || e.CompletionRate > 100 {
		return fmt.Errorf("model: completion rate %.2f outside [0, 100]", e.CompletionRate)
	}
	return nil
}
