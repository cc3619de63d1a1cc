package services

import "strings"

// Topic is the classified subject of a user message.
type Topic int

const (
	TopicNone Topic = iota
	TopicWorkout
	TopicNutrition
)

func (t Topic) String() string {
	switch t {
	case TopicWorkout:
		return "workout"
	case TopicNutrition:
		return "nutrition"
	default:
		return "none"
	}
}

// Keyword tables for intent detection. Kept as data so the lists can be
// tested and swapped without touching ClassifyIntent.
var (
	workoutKeywords = []string{
		"workout", "exercise", "training", "lift", "cardio",
		"strength", "routine", "fitness", "muscle", "gym",
	}
	nutritionKeywords = []string{
		"food", "meal", "recipe", "diet", "nutrition", "eat",
		"calorie", "protein", "carb", "vegan", "vegetarian", "gluten",
	}
)

// ClassifyIntent maps a free-text message to a topic by case-insensitive
// substring match. The workout set is checked first and wins when a message
// matches both sets.
func ClassifyIntent(message string) Topic {
	lower := strings.ToLower(message)
	if containsAny(lower, workoutKeywords) {
		return TopicWorkout
	}
	if containsAny(lower, nutritionKeywords) {
		return TopicNutrition
	}
	return TopicNone
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
