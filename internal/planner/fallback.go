package planner

import (
	"context"
	"log"
	"strings"

	"github.com/fixyourlife/fixyourlife/internal/model"
	"github.com/fixyourlife/fixyourlife/internal/plan"
)

// WithFallback wraps primary so a generation failure yields the built-in
// plan instead of an error. Used only when the fallback is enabled in
// config; the default contract keeps failures visible.
func WithFallback(primary plan.Generator) plan.Generator {
	return resilient{primary: primary}
}

type resilient struct {
	primary plan.Generator
}

func (r resilient) GeneratePlan(ctx context.Context, inputs map[string]string) (model.PlanData, error) {
	out, err := r.primary.GeneratePlan(ctx, inputs)
	if err == nil {
		return out, nil
	}
	log.Printf("planner: generation failed, using built-in plan: %v", err)
	return Fallback{}.GeneratePlan(ctx, inputs)
}

// Fallback produces a plan locally when the remote model is
// unreachable. It starts from a stock schedule and nudges a few items
// based on the onboarding answers. Enabled explicitly via config.
type Fallback struct{}

func (Fallback) GeneratePlan(_ context.Context, inputs map[string]string) (model.PlanData, error) {
	plan := DefaultPlan()

	routine := strings.ToLower(inputs["routine"])
	habits := strings.ToLower(inputs["habits"])
	challenges := strings.ToLower(inputs["challenges"])
	goals := inputs["goals"]

	// Late sleepers get the morning block shifted.
	if strings.Contains(routine, "sleep") && strings.Contains(routine, "4") {
		plan.DailySchedule[0].Time = "08:00 AM"
		plan.DailySchedule[1].Time = "08:30 AM"
		plan.DailySchedule[2].Time = "09:00 AM"
		plan.DailySchedule[3].Time = "10:00 AM"
	}
	if strings.Contains(habits, "movie") {
		plan.DailySchedule[10].Task = "Watch a movie / TV show (limited time)"
	}
	if strings.Contains(habits, "walk") {
		plan.DailySchedule[7].Task = "Go for a 30-minute walk"
	}

	if strings.Contains(challenges, "college") {
		plan.RecoverySteps = append(plan.RecoverySteps,
			"Create a realistic college attendance schedule - commit to attending at least 3 days a week initially.")
	}
	if strings.Contains(challenges, "meals") {
		plan.RecoverySteps = append(plan.RecoverySteps,
			"Prepare simple meals in advance for days when motivation is low.")
	}

	if strings.Contains(goals, "retrack") {
		plan.MotivationalMessage = "Getting your life back on track starts with small daily actions. Each positive choice you make today is reshaping your future. You have the strength to rebuild your routine and reclaim your potential."
	}
	return plan, nil
}

// DefaultPlan is the stock schedule used when no personalized plan is
// available.
func DefaultPlan() model.PlanData {
	return model.PlanData{
		DailySchedule: []model.ScheduleItem{
			{Time: "06:00 AM", Task: "Wake up & Morning Routine"},
			{Time: "06:30 AM", Task: "Meditation / Mindfulness"},
			{Time: "07:00 AM", Task: "Healthy breakfast"},
			{Time: "08:00 AM", Task: "Exercise / Physical Activity"},
			{Time: "09:30 AM", Task: "Work/Study Session 1"},
			{Time: "12:00 PM", Task: "Lunch & short walk"},
			{Time: "01:00 PM", Task: "Work/Study Session 2"},
			{Time: "03:30 PM", Task: "Break - Healthy snack"},
			{Time: "04:00 PM", Task: "Work/Study Session 3"},
			{Time: "06:00 PM", Task: "Dinner preparation and eating"},
			{Time: "07:30 PM", Task: "Personal time / Hobby"},
			{Time: "09:30 PM", Task: "Evening wind down routine"},
			{Time: "10:30 PM", Task: "Sleep"},
		},
		RecoverySteps: []string{
			"Establish a consistent sleep schedule - aim to be in bed by 10:30 PM and wake up at 6:30 AM.",
			"Ensure you eat regular, nutritious meals throughout the day.",
			"Schedule time for physical activity - even a 30-minute walk makes a difference.",
			"Set aside specific times for study/work with scheduled breaks.",
			"Limit screen time, especially before bed.",
			"Take time for activities you enjoy, but set clear boundaries.",
			"Practice mindfulness or meditation for at least 10 minutes each day.",
			"Connect with supportive friends or family regularly.",
		},
		MotivationalMessage: "You've taken the first step toward improving your life by seeking help. Each small change you make builds momentum toward a better future.",
	}
}
