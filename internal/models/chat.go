package models

// ChatTurn is one role-tagged message of the rolling conversation the client
// replays on every request. Role is "user" or "model", matching the Gemini
// role vocabulary so history can be forwarded without renaming.
type ChatTurn struct {
	Role  string `json:"role"`
	Parts string `json:"parts"`
}

// ChatRequest is the payload sent to the assistant endpoint.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// AssistantReply is the assistant endpoint's success payload. At most one of
// WorkoutData/RecipeData is non-nil; both are null and DataType is null when
// no catalog was consulted.
type AssistantReply struct {
	Reply       string         `json:"reply"`
	WorkoutData []ExerciseItem `json:"workoutData"`
	RecipeData  []RecipeItem   `json:"recipeData"`
	DataType    *string        `json:"dataType"`
}

// Catalog data type labels carried in AssistantReply.DataType.
const (
	DataTypeExercise = "exercise"
	DataTypeRecipe   = "recipe"
)
