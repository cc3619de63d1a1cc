package services

import (
	"fmt"
	"strings"

	"wellnessai-backend/internal/models"
)

// systemPrompt is the persona and policy preamble prepended to every model
// prompt.
const systemPrompt = `
You are a certified personal trainer and nutritionist. You help users with beginner-friendly workout plans, meal suggestions, calorie advice, and basic meditation tips. Always ask users about their goals, fitness level, and dietary preferences before giving detailed answers. Never give medical advice. If someone has a health condition or injury, tell them to consult a doctor. Be friendly, concise, and motivating in tone. Avoid extreme diets or unsafe recommendations.

When users ask about workout routines for specific body parts or goals, mention that you're checking the ExerciseDB for accurate information.

When users ask about meal plans, recipes, or nutrition advice, mention that you're checking Spoonacular's database for verified recipes and nutritional information.

Your responses should be well-formatted with clear paragraphs and bullet points where appropriate.
`

// ComposePrompt assembles the final instruction text: the system preamble,
// the user's message, and, when catalog data is present, a compact digest the
// model is told to draw on. Pure text assembly.
func ComposePrompt(message string, exercises []models.ExerciseItem, recipes []models.RecipeItem) string {
	switch {
	case len(exercises) > 0:
		lines := make([]string, len(exercises))
		for i, ex := range exercises {
			lines[i] = fmt.Sprintf("Name: %s, Target: %s, Equipment: %s", ex.Name, ex.Target, ex.Equipment)
		}
		return fmt.Sprintf("%s\n\nUser query: %s\n\nI found these exercises that might be relevant to the user's query. Use this data to provide specific exercise recommendations:\n\n%s\n\nPlease use this exercise data in your response.",
			systemPrompt, message, strings.Join(lines, "\n"))

	case len(recipes) > 0:
		lines := make([]string, len(recipes))
		for i, rec := range recipes {
			diets := "N/A"
			if len(rec.Diets) > 0 {
				diets = strings.Join(rec.Diets, ", ")
			}
			lines[i] = fmt.Sprintf("Title: %s, Diet: %s", rec.Title, diets)
		}
		return fmt.Sprintf("%s\n\nUser query: %s\n\nI found these recipes that might be relevant to the user's query. Use this data to provide specific meal recommendations:\n\n%s\n\nPlease use this recipe data in your response.",
			systemPrompt, message, strings.Join(lines, "\n"))

	default:
		return fmt.Sprintf("%s\n\nUser query: %s", systemPrompt, message)
	}
}
