package services

import (
	"context"
	"log"

	"wellnessai-backend/internal/models"
)

// Narrow seams over the concrete services so the orchestrator can be tested
// with fakes.
type exerciseCatalog interface {
	FetchExercises(ctx context.Context, message string) ([]models.ExerciseItem, error)
}

type recipeCatalog interface {
	FetchRecipes(ctx context.Context, message string) ([]models.RecipeItem, error)
}

type chatModel interface {
	Converse(ctx context.Context, history []models.ChatTurn, prompt string) (string, error)
}

// AssistantService drives the assistant pipeline: classify the message,
// conditionally enrich from one catalog, compose the prompt, run the model
// turn, and package the reply.
type AssistantService struct {
	model     chatModel
	exercises exerciseCatalog
	recipes   recipeCatalog
}

func NewAssistantService(model chatModel, exercises exerciseCatalog, recipes recipeCatalog) *AssistantService {
	return &AssistantService{
		model:     model,
		exercises: exercises,
		recipes:   recipes,
	}
}

// Chat runs one assistant turn. A catalog failure degrades to an unenriched
// prompt; only a model failure (ErrModelUnavailable) aborts the turn. The
// reply's dataType keeps the classified topic label even when the catalog
// call failed and the data field is null.
func (s *AssistantService) Chat(ctx context.Context, message string, history []models.ChatTurn) (*models.AssistantReply, error) {
	var (
		exercises []models.ExerciseItem
		recipes   []models.RecipeItem
		dataType  *string
	)

	switch ClassifyIntent(message) {
	case TopicWorkout:
		log.Println("Workout query detected, fetching exercise data...")
		dt := models.DataTypeExercise
		dataType = &dt

		items, err := s.exercises.FetchExercises(ctx, message)
		if err != nil {
			log.Printf("exercise catalog lookup failed, continuing without data: %v", err)
		} else {
			exercises = items
		}

	case TopicNutrition:
		log.Println("Nutrition query detected, fetching recipe data...")
		dt := models.DataTypeRecipe
		dataType = &dt

		items, err := s.recipes.FetchRecipes(ctx, message)
		if err != nil {
			log.Printf("recipe catalog lookup failed, continuing without data: %v", err)
		} else {
			recipes = items
		}
	}

	prompt := ComposePrompt(message, exercises, recipes)

	reply, err := s.model.Converse(ctx, history, prompt)
	if err != nil {
		return nil, err
	}

	return assembleReply(reply, dataType, exercises, recipes), nil
}

// assembleReply packages the model text with the catalog data under the
// matching field. Pure; no failure modes.
func assembleReply(text string, dataType *string, exercises []models.ExerciseItem, recipes []models.RecipeItem) *models.AssistantReply {
	reply := &models.AssistantReply{
		Reply:    text,
		DataType: dataType,
	}
	if dataType == nil {
		return reply
	}
	switch *dataType {
	case models.DataTypeExercise:
		reply.WorkoutData = exercises
	case models.DataTypeRecipe:
		reply.RecipeData = recipes
	}
	return reply
}
