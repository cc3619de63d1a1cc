package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"wellnessai-backend/internal/models"
)

type WorkoutRepo struct {
	pool *pgxpool.Pool
}

func NewWorkoutRepo(pool *pgxpool.Pool) *WorkoutRepo {
	return &WorkoutRepo{pool: pool}
}

func (r *WorkoutRepo) Create(ctx context.Context, w *models.Workout) error {
	query := `
		INSERT INTO workouts (id, user_id, title, type, duration, calories_burned, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	w.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		w.ID, w.UserID, w.Title, w.Type, w.Duration, w.CaloriesBurned, w.Date,
	).Scan(&w.CreatedAt)
}

func (r *WorkoutRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Workout, error) {
	query := `SELECT id, user_id, title, type, duration, calories_burned, date, created_at
		FROM workouts WHERE user_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []models.Workout{}
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Title, &w.Type, &w.Duration, &w.CaloriesBurned, &w.Date, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func (r *WorkoutRepo) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.Workout, error) {
	query := `SELECT id, user_id, title, type, duration, calories_burned, date, created_at
		FROM workouts WHERE user_id = $1 AND date = $2 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []models.Workout{}
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Title, &w.Type, &w.Duration, &w.CaloriesBurned, &w.Date, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// Delete removes a workout owned by userID. Returns the number of rows
// affected so handlers can distinguish not-found.
func (r *WorkoutRepo) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM workouts WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
