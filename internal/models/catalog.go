package models

// ExerciseItem is one record from the exercise catalog. The upstream payload
// is loosely structured; every field is optional on the wire and decodes to
// its zero value when absent.
type ExerciseItem struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	BodyPart  string `json:"bodyPart,omitempty"`
	Target    string `json:"target,omitempty"`
	Equipment string `json:"equipment,omitempty"`
	GifURL    string `json:"gifUrl,omitempty"`
}

// RecipeItem is one record from the recipe catalog search. Nutrition is only
// populated when the upstream includes per-recipe information.
type RecipeItem struct {
	ID             int              `json:"id,omitempty"`
	Title          string           `json:"title"`
	Image          string           `json:"image,omitempty"`
	ReadyInMinutes int              `json:"readyInMinutes,omitempty"`
	Servings       int              `json:"servings,omitempty"`
	Diets          []string         `json:"diets,omitempty"`
	Nutrition      *RecipeNutrition `json:"nutrition,omitempty"`
}

type RecipeNutrition struct {
	Nutrients []Nutrient `json:"nutrients,omitempty"`
}

type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}
