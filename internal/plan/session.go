package plan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

var (
	ErrIndexOutOfRange = errors.New("plan: schedule index out of range")
	ErrNoPlan          = errors.New("plan: no active plan")
)

// Notifier is the fire-and-forget user-facing message sink. Implementations
// must never block the caller.
type Notifier interface {
	Notify(title, body string)
}

type NopNotifier struct{}

func (NopNotifier) Notify(string, string) {}

// Recorder receives the day's completion counts after every toggle.
type Recorder interface {
	Record(date model.Day, tasksCompleted, totalTasks int)
}

// Generator produces a full replacement plan from onboarding answers.
type Generator interface {
	GeneratePlan(ctx context.Context, inputs map[string]string) (model.PlanData, error)
}

const noExpansion = -1

// Session owns the active plan for one authenticated user. It is constructed
// at login and passed explicitly to the components that mutate plan state;
// there is no package-level current plan.
type Session struct {
	cache    Cache
	notifier Notifier
	recorder Recorder
	clock    func() time.Time

	plan     model.PlanData
	hasPlan  bool
	expanded int
}

type SessionOption func(*Session)

func WithNotifier(n Notifier) SessionOption {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithRecorder(r Recorder) SessionOption {
	return func(s *Session) { s.recorder = r }
}

func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewSession loads the last persisted plan from the cache, if any.
func NewSession(cache Cache, opts ...SessionOption) (*Session, error) {
	s := &Session{
		cache:    cache,
		notifier: NopNotifier{},
		clock:    time.Now,
		expanded: noExpansion,
	}
	for _, opt := range opts {
		opt(s)
	}
	plan, ok, err := cache.LoadPlan()
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if ok {
		s.plan = plan
		s.hasPlan = true
	}
	return s, nil
}

func (s *Session) HasPlan() bool {
	return s.hasPlan
}

// Plan returns a copy of the active plan; mutations go through the session.
func (s *Session) Plan() model.PlanData {
	return s.plan.Clone()
}

func (s *Session) Schedule() []model.ScheduleItem {
	return s.plan.Clone().DailySchedule
}

func (s *Session) ScheduleLen() int {
	return len(s.plan.DailySchedule)
}

// ToggleCompletion flips the completed flag of the item at index, persists
// the plan, records today's progress, and notifies the user. Applying it
// twice restores the original state.
func (s *Session) ToggleCompletion(index int) error {
	if !s.hasPlan {
		return ErrNoPlan
	}
	if index < 0 || index >= len(s.plan.DailySchedule) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	item := &s.plan.DailySchedule[index]
	item.Completed = !item.Completed

	s.persist()
	if s.recorder != nil {
		today := model.DayOf(s.clock())
		s.recorder.Record(today, s.plan.CompletedCount(), len(s.plan.DailySchedule))
	}

	title := "Task marked incomplete"
	if item.Completed {
		title = "Task completed!"
	}
	s.notifier.Notify(title, item.Task)
	return nil
}

// ResetAll clears every completed flag. Progress history is a log of past
// completion and is deliberately left untouched. Returns false when the
// schedule is empty and nothing happened.
func (s *Session) ResetAll() bool {
	if len(s.plan.DailySchedule) == 0 {
		return false
	}
	for i := range s.plan.DailySchedule {
		s.plan.DailySchedule[i].Completed = false
	}
	s.persist()
	return true
}

// ToggleExpansion expands the item at index, collapsing any other. Selecting
// the already-expanded item collapses it.
func (s *Session) ToggleExpansion(index int) error {
	if !s.hasPlan {
		return ErrNoPlan
	}
	if index < 0 || index >= len(s.plan.DailySchedule) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if s.expanded == index {
		s.expanded = noExpansion
	} else {
		s.expanded = index
	}
	return nil
}

// Expanded returns the expanded item index, or -1 when nothing is expanded.
func (s *Session) Expanded() int {
	return s.expanded
}

// Regenerate asks the generator for a full replacement plan. The active plan
// is only overwritten on success; any failure leaves local state unchanged.
func (s *Session) Regenerate(ctx context.Context, inputs map[string]string, gen Generator) error {
	plan, err := gen.GeneratePlan(ctx, inputs)
	if err != nil {
		return err
	}
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("generated plan rejected: %w", err)
	}
	s.Replace(plan)
	return nil
}

// Replace installs a new plan wholesale and persists it.
func (s *Session) Replace(plan model.PlanData) {
	s.plan = plan
	s.hasPlan = true
	s.expanded = noExpansion
	s.persist()
}

// SetMotivationalMessage updates the message in place and persists the plan.
func (s *Session) SetMotivationalMessage(msg string) error {
	if strings.TrimSpace(msg) == "" {
		return model.ErrEmptyMessage
	}
	s.plan.MotivationalMessage = msg
	s.persist()
	return nil
}

// persist writes the plan to the local cache. Failures are logged and never
// revert the in-memory mutation that triggered them.
func (s *Session) persist() {
	if err := s.cache.SavePlan(s.plan); err != nil {
		log.Printf("plan: persist failed: %v", err)
	}
}
