package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySchedule = errors.New("model: plan has no schedule items")
	ErrEmptyRecovery = errors.New("model: plan has no recovery steps")
	ErrEmptyMessage  = errors.New("model: plan has no motivational message")
	ErrEmptyTask     = errors.New("model: schedule item has empty task")
)

// ScheduleItem is one task instance for the current day. Time is display
// text such as "06:30 AM"; items keep their insertion order and the index
// within the schedule is the item's identity for the session.
type ScheduleItem struct {
	Time            string   `json:"time"`
	Task            string   `json:"task"`
	Completed       bool     `json:"completed"`
	Details         string   `json:"details,omitempty"`
	MealSuggestions []string `json:"mealSuggestions,omitempty"`
}

// PlanData is the active plan for one user session. Exactly one instance is
// live at a time; regeneration replaces it wholesale.
type PlanData struct {
	DailySchedule       []ScheduleItem `json:"dailySchedule"`
	RecoverySteps       []string       `json:"recoverySteps"`
	MotivationalMessage string         `json:"motivationalMessage"`
}

func (p PlanData) Validate() error {
	if len(p.DailySchedule) == 0 {
		return ErrEmptySchedule
	}
	if len(p.RecoverySteps) == 0 {
		return ErrEmptyRecovery
	}
	if strings.TrimSpace(p.MotivationalMessage) == "" {
		return ErrEmptyMessage
	}
	for i, item := range p.DailySchedule {
		if strings.TrimSpace(item.Task) == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyTask, i)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate without sharing slices.
func (p PlanData) Clone() PlanData {
	out := PlanData{
		MotivationalMessage: p.MotivationalMessage,
	}
	if p.DailySchedule != nil {
		out.DailySchedule = make([]ScheduleItem, len(p.DailySchedule))
		copy(out.DailySchedule, p.DailySchedule)
		for i, item := range p.DailySchedule {
			if item.MealSuggestions != nil {
				out.DailySchedule[i].MealSuggestions = append([]string(nil), item.MealSuggestions...)
			}
		}
	}
	if p.RecoverySteps != nil {
		out.RecoverySteps = append([]string(nil), p.RecoverySteps...)
	}
	return out
}

func (p PlanData) CompletedCount() int {
	count := 0
	for _, item := range p.DailySchedule {
		if item.Completed {
			count++
		}
	}
	return count
}
