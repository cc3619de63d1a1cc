package models

import (
	"time"

	"github.com/google/uuid"
)

// NutritionLog is one logged food entry. Recipes saved from the assistant's
// previews land here with meal_type "recipe".
type NutritionLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FoodName  string    `json:"food_name"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	MealType  string    `json:"meal_type"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateNutritionLogRequest struct {
	FoodName string  `json:"food_name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	MealType string  `json:"meal_type"`
	Date     string  `json:"date"`
}
