package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"wellnessai-backend/internal/models"
)

type NutritionRepo struct {
	pool *pgxpool.Pool
}

func NewNutritionRepo(pool *pgxpool.Pool) *NutritionRepo {
	return &NutritionRepo{pool: pool}
}

func (r *NutritionRepo) Create(ctx context.Context, n *models.NutritionLog) error {
	query := `
		INSERT INTO nutrition_logs (id, user_id, food_name, calories, protein, carbs, fat, meal_type, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	n.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		n.ID, n.UserID, n.FoodName, n.Calories, n.Protein, n.Carbs, n.Fat, n.MealType, n.Date,
	).Scan(&n.CreatedAt)
}

func (r *NutritionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.NutritionLog, error) {
	query := `SELECT id, user_id, food_name, calories, protein, carbs, fat, meal_type, date, created_at
		FROM nutrition_logs WHERE user_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.NutritionLog{}
	for rows.Next() {
		var n models.NutritionLog
		if err := rows.Scan(&n.ID, &n.UserID, &n.FoodName, &n.Calories, &n.Protein, &n.Carbs, &n.Fat, &n.MealType, &n.Date, &n.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, n)
	}
	return logs, rows.Err()
}

func (r *NutritionRepo) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.NutritionLog, error) {
	query := `SELECT id, user_id, food_name, calories, protein, carbs, fat, meal_type, date, created_at
		FROM nutrition_logs WHERE user_id = $1 AND date = $2 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.NutritionLog{}
	for rows.Next() {
		var n models.NutritionLog
		if err := rows.Scan(&n.ID, &n.UserID, &n.FoodName, &n.Calories, &n.Protein, &n.Carbs, &n.Fat, &n.MealType, &n.Date, &n.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, n)
	}
	return logs, rows.Err()
}

func (r *NutritionRepo) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM nutrition_logs WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
