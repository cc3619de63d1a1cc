package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout is one logged or saved workout entry. Entries added from the
// assistant's exercise previews use the exercise target as the type.
type Workout struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"calories_burned"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateWorkoutRequest struct {
	Title          string `json:"title"`
	Type           string `json:"type"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"calories_burned"`
	Date           string `json:"date"`
}
