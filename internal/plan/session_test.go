package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

type capturedNotification struct {
	Title string
	Body  string
}

type fakeNotifier struct {
	sent []capturedNotification
}

func (n *fakeNotifier) Notify(title, body string) {
	n.sent = append(n.sent, capturedNotification{Title: title, Body: body})
}

type fakeRecorder struct {
	dates     []model.Day
	completed []int
	totals    []int
}

func (r *fakeRecorder) Record(date model.Day, completed, total int) {
	r.dates = append(r.dates, date)
	r.completed = append(r.completed, completed)
	r.totals = append(r.totals, total)
}

func testPlan() model.PlanData {
	return model.PlanData{
		DailySchedule: []model.ScheduleItem{
			{Time: "06:30 AM", Task: "Wake up & Morning Routine"},
			{Time: "07:00 AM", Task: "15 minutes of meditation"},
			{Time: "08:00 AM", Task: "30 minutes of exercise", Completed: true},
		},
		RecoverySteps:       []string{"Limit screen time before bed."},
		MotivationalMessage: "Keep going.",
	}
}

func newTestSession(t *testing.T, opts ...SessionOption) (*Session, *FileCache) {
	t.Helper()
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	if err := cache.SavePlan(testPlan()); err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	session, err := NewSession(cache, opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session, cache
}

func TestToggleCompletionIsItsOwnInverse(t *testing.T) {
	session, _ := newTestSession(t)
	before := session.Schedule()

	for index := range before {
		if err := session.ToggleCompletion(index); err != nil {
			t.Fatalf("first toggle %d: %v", index, err)
		}
		if err := session.ToggleCompletion(index); err != nil {
			t.Fatalf("second toggle %d: %v", index, err)
		}
	}

	after := session.Schedule()
	for i := range before {
		if before[i].Completed != after[i].Completed {
			t.Fatalf("item %d changed after double toggle: %v -> %v", i, before[i].Completed, after[i].Completed)
		}
	}
}

func TestToggleCompletionTouchesOnlyTargetItem(t *testing.T) {
	session, _ := newTestSession(t)
	if err := session.ToggleCompletion(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	schedule := session.Schedule()
	if !schedule[1].Completed {
		t.Fatal("expected item 1 completed")
	}
	if schedule[0].Completed || !schedule[2].Completed {
		t.Fatalf("neighbouring items changed: %+v", schedule)
	}
}

func TestToggleCompletionOutOfRange(t *testing.T) {
	session, _ := newTestSession(t)
	for _, index := range []int{-1, 3, 99} {
		if err := session.ToggleCompletion(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange, got: %v", index, err)
		}
	}
}

func TestToggleCompletionRecordsTodayAndNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	fixed := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	session, _ := newTestSession(t,
		WithNotifier(notifier),
		WithRecorder(recorder),
		WithClock(func() time.Time { return fixed }),
	)

	if err := session.ToggleCompletion(0); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if len(recorder.dates) != 1 || recorder.dates[0] != model.Day("2024-01-02") {
		t.Fatalf("unexpected recorded dates: %v", recorder.dates)
	}
	if recorder.completed[0] != 2 || recorder.totals[0] != 3 {
		t.Fatalf("unexpected recorded counts: %d/%d", recorder.completed[0], recorder.totals[0])
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Title != "Task completed!" {
		t.Fatalf("unexpected notifications: %+v", notifier.sent)
	}
	if notifier.sent[0].Body != "Wake up & Morning Routine" {
		t.Fatalf("notification should carry the task text, got %q", notifier.sent[0].Body)
	}

	if err := session.ToggleCompletion(0); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if notifier.sent[1].Title != "Task marked incomplete" {
		t.Fatalf("unexpected second notification: %+v", notifier.sent[1])
	}
}

func TestResetAllClearsCompletionAndPreservesHistory(t *testing.T) {
	session, cache := newTestSession(t)
	seed := []model.ProgressEntry{model.NewProgressEntry(model.Day("2024-01-01"), 2, 3)}
	if err := cache.SaveHistory(seed); err != nil {
		t.Fatalf("seed history: %v", err)
	}

	if !session.ResetAll() {
		t.Fatal("expected reset to act on a non-empty schedule")
	}
	for i, item := range session.Schedule() {
		if item.Completed {
			t.Fatalf("item %d still completed after reset", i)
		}
	}

	// Idempotent: a second reset leaves state unchanged.
	if !session.ResetAll() {
		t.Fatal("expected reset to still report work on a non-empty schedule")
	}
	for i, item := range session.Schedule() {
		if item.Completed {
			t.Fatalf("item %d completed after repeated reset", i)
		}
	}

	history, err := cache.LoadHistory()
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 1 || history[0].Date != seed[0].Date {
		t.Fatalf("reset must not touch progress history, got: %+v", history)
	}
}

func TestResetAllOnEmptySchedule(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	session, err := NewSession(cache)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if session.ResetAll() {
		t.Fatal("expected no-op reset for empty schedule")
	}
}

func TestToggleExpansionSingleAndToggle(t *testing.T) {
	session, _ := newTestSession(t)
	if session.Expanded() != -1 {
		t.Fatalf("expected no initial expansion, got %d", session.Expanded())
	}

	if err := session.ToggleExpansion(0); err != nil {
		t.Fatalf("expand 0: %v", err)
	}
	if session.Expanded() != 0 {
		t.Fatalf("expected item 0 expanded, got %d", session.Expanded())
	}

	// Expanding another item replaces the expansion; it does not stack.
	if err := session.ToggleExpansion(2); err != nil {
		t.Fatalf("expand 2: %v", err)
	}
	if session.Expanded() != 2 {
		t.Fatalf("expected item 2 expanded, got %d", session.Expanded())
	}

	// Selecting the expanded item collapses it.
	if err := session.ToggleExpansion(2); err != nil {
		t.Fatalf("collapse 2: %v", err)
	}
	if session.Expanded() != -1 {
		t.Fatalf("expected collapsed, got %d", session.Expanded())
	}

	if err := session.ToggleExpansion(7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got: %v", err)
	}
}

type stubGenerator struct {
	plan model.PlanData
	err  error
}

func (g stubGenerator) GeneratePlan(context.Context, map[string]string) (model.PlanData, error) {
	return g.plan, g.err
}

func TestRegenerateOverwritesOnlyOnSuccess(t *testing.T) {
	session, cache := newTestSession(t)
	original := session.Plan()

	failed := stubGenerator{err: errors.New("upstream unavailable")}
	if err := session.Regenerate(context.Background(), nil, failed); err == nil {
		t.Fatal("expected error from failing generator")
	}
	if got := session.Plan(); got.MotivationalMessage != original.MotivationalMessage {
		t.Fatal("failed generation must leave the plan unchanged")
	}

	invalid := stubGenerator{plan: model.PlanData{MotivationalMessage: "only a message"}}
	if err := session.Regenerate(context.Background(), nil, invalid); err == nil {
		t.Fatal("expected structurally invalid plan to be rejected")
	}

	replacement := testPlan()
	replacement.MotivationalMessage = "A fresh start."
	if err := session.Regenerate(context.Background(), nil, stubGenerator{plan: replacement}); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if session.Plan().MotivationalMessage != "A fresh start." {
		t.Fatal("expected replacement plan installed")
	}

	persisted, ok, err := cache.LoadPlan()
	if err != nil || !ok {
		t.Fatalf("load persisted plan: ok=%v err=%v", ok, err)
	}
	if persisted.MotivationalMessage != "A fresh start." {
		t.Fatal("expected replacement plan persisted")
	}
}

func TestPlanCacheRoundTrip(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	if _, ok, err := cache.LoadPlan(); err != nil || ok {
		t.Fatalf("expected empty cache, ok=%v err=%v", ok, err)
	}

	in := testPlan()
	in.DailySchedule[0].MealSuggestions = []string{"Oatmeal with nuts and banana"}
	if err := cache.SavePlan(in); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	out, ok, err := cache.LoadPlan()
	if err != nil || !ok {
		t.Fatalf("load plan: ok=%v err=%v", ok, err)
	}
	if len(out.DailySchedule) != len(in.DailySchedule) {
		t.Fatalf("schedule length mismatch: %d vs %d", len(out.DailySchedule), len(in.DailySchedule))
	}
	for i := range in.DailySchedule {
		if out.DailySchedule[i].Task != in.DailySchedule[i].Task ||
			out.DailySchedule[i].Time != in.DailySchedule[i].Time ||
			out.DailySchedule[i].Completed != in.DailySchedule[i].Completed {
			t.Fatalf("item %d mismatch: %+v vs %+v", i, out.DailySchedule[i], in.DailySchedule[i])
		}
	}
	if out.DailySchedule[0].MealSuggestions[0] != "Oatmeal with nuts and banana" {
		t.Fatal("meal suggestions lost in round trip")
	}
	if out.MotivationalMessage != in.MotivationalMessage {
		t.Fatal("motivational message lost in round trip")
	}
}

func TestLastResetDateRoundTrip(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	if _, ok, err := cache.LastResetDate(); err != nil || ok {
		t.Fatalf("expected missing marker, ok=%v err=%v", ok, err)
	}
	if err := cache.SetLastResetDate(model.Day("2024-01-02")); err != nil {
		t.Fatalf("set marker: %v", err)
	}
	day, ok, err := cache.LastResetDate()
	if err != nil || !ok {
		t.Fatalf("read marker: ok=%v err=%v", ok, err)
	}
	if day != model.Day("2024-01-02") {
		t.Fatalf("unexpected marker: %s", day)
	}
}

func TestToggleWithoutPlanReturnsErrNoPlan(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	session, err := NewSession(cache)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if session.HasPlan() {
		t.Fatal("expected no plan on a fresh cache")
	}

	if err := session.ToggleCompletion(0); !errors.Is(err, ErrNoPlan) {
		t.Fatalf("expected ErrNoPlan from toggle, got %v", err)
	}
	if err := session.ToggleExpansion(0); !errors.Is(err, ErrNoPlan) {
		t.Fatalf("expected ErrNoPlan from expansion, got %v", err)
	}
}
