package model

import "strings"

// TaskDetails is static guidance derived from a task's text. It is not
// authoritative state; it can always be recomputed from the task.
type TaskDetails struct {
	Details         string
	MealSuggestions []string
}

var breakfastSuggestions = []string{
	"Greek yogurt with berries and granola",
	"Oatmeal with nuts and banana",
	"Whole grain toast with avocado and eggs",
	"Smoothie with spinach, banana, and protein powder",
	"Overnight chia pudding with fruit",
}

var lunchSuggestions = []string{
	"Quinoa bowl with roasted vegetables and grilled chicken",
	"Mediterranean salad with chickpeas and feta",
	"Turkey and vegetable wrap with hummus",
	"Lentil soup with a side of whole grain bread",
	"Baked sweet potato with tuna salad",
}

var dinnerSuggestions = []string{
	"Grilled salmon with asparagus and brown rice",
	"Turkey or veggie chili with vegetables",
	"Stir-fry with tofu and mixed vegetables",
	"Roasted chicken with sweet potatoes and broccoli",
	"Zucchini noodles with tomato sauce and turkey meatballs",
}

var snackSuggestions = []string{
	"Apple slices with almond butter",
	"Handful of mixed nuts and dried fruits",
	"Hummus with carrot and cucumber sticks",
	"Greek yogurt with berries",
	"Hard-boiled eggs",
}

// LookupTaskDetails maps a task description to guidance text by keyword.
func LookupTaskDetails(task string) TaskDetails {
	lower := strings.ToLower(task)

	if containsAny(lower, "breakfast", "lunch", "dinner", "meal", "eat", "food") {
		mealType := "meal"
		suggestions := snackSuggestions
		switch {
		case strings.Contains(lower, "breakfast"):
			mealType = "breakfast"
			suggestions = breakfastSuggestions
		case strings.Contains(lower, "lunch"):
			mealType = "lunch"
			suggestions = lunchSuggestions
		case strings.Contains(lower, "dinner"):
			mealType = "dinner"
			suggestions = dinnerSuggestions
		}
		return TaskDetails{
			Details: "This " + mealType + " should focus on nutrient-dense, whole foods. " +
				"Aim for a balance of protein, healthy fats, and complex carbohydrates. " +
				"Stay hydrated by drinking water before and after your meal.",
			MealSuggestions: suggestions,
		}
	}

	if containsAny(lower, "exercise", "workout", "walk", "jog", "run", "gym") {
		return TaskDetails{
			Details: "Start with a 5-minute warm-up. Focus on proper form rather than intensity. " +
				"End with stretching to promote recovery. Remember that consistency is more important than perfection.",
		}
	}

	if containsAny(lower, "meditate", "meditation", "mindful", "breathe", "relax") {
		return TaskDetails{
			Details: "Find a quiet space where you won't be disturbed. Sit comfortably with good posture. " +
				"Focus on your breath, allowing thoughts to come and go without judgment. " +
				"Start with just 5 minutes if you're new to meditation.",
		}
	}

	return TaskDetails{
		Details: "Take your time with this task. Break it down into smaller steps if needed. " +
			"Remember to stay present and focus on one thing at a time.",
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
