package services

import (
	"strings"
	"testing"

	"wellnessai-backend/internal/models"
)

func TestComposePrompt_NoData(t *testing.T) {
	prompt := ComposePrompt("hello there", nil, nil)

	if !strings.Contains(prompt, "certified personal trainer") {
		t.Error("prompt missing system preamble")
	}
	if !strings.Contains(prompt, "User query: hello there") {
		t.Error("prompt missing user query")
	}
	if strings.Contains(prompt, "I found these") {
		t.Error("prompt should not contain a digest when no data is present")
	}
}

func TestComposePrompt_ExerciseDigest(t *testing.T) {
	exercises := []models.ExerciseItem{
		{Name: "push up", Target: "pectorals", Equipment: "body weight"},
		{Name: "bench press", Target: "pectorals", Equipment: "barbell"},
	}

	prompt := ComposePrompt("chest workout", exercises, nil)

	if !strings.Contains(prompt, "Name: push up, Target: pectorals, Equipment: body weight") {
		t.Error("prompt missing first exercise line")
	}
	if !strings.Contains(prompt, "Name: bench press, Target: pectorals, Equipment: barbell") {
		t.Error("prompt missing second exercise line")
	}
	if !strings.Contains(prompt, "specific exercise recommendations") {
		t.Error("prompt missing exercise instruction line")
	}
	if !strings.Contains(prompt, "User query: chest workout") {
		t.Error("prompt missing user query")
	}
}

func TestComposePrompt_RecipeDigest(t *testing.T) {
	recipes := []models.RecipeItem{
		{Title: "Vegan Chili", Diets: []string{"vegan", "gluten free"}},
		{Title: "Plain Oats"},
	}

	prompt := ComposePrompt("vegan meal", nil, recipes)

	if !strings.Contains(prompt, "Title: Vegan Chili, Diet: vegan, gluten free") {
		t.Error("prompt missing diet-tagged recipe line")
	}
	if !strings.Contains(prompt, "Title: Plain Oats, Diet: N/A") {
		t.Error("recipe without diets should render N/A")
	}
	if !strings.Contains(prompt, "specific meal recommendations") {
		t.Error("prompt missing recipe instruction line")
	}
}

func TestComposePrompt_Idempotent(t *testing.T) {
	exercises := []models.ExerciseItem{{Name: "squat", Target: "quads", Equipment: "barbell"}}

	first := ComposePrompt("leg day", exercises, nil)
	for i := 0; i < 5; i++ {
		if got := ComposePrompt("leg day", exercises, nil); got != first {
			t.Fatal("ComposePrompt is not deterministic for identical inputs")
		}
	}
}
