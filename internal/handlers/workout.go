package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wellnessai-backend/internal/middleware"
	"wellnessai-backend/internal/models"
	"wellnessai-backend/internal/repository"
)

type WorkoutHandler struct {
	workoutRepo *repository.WorkoutRepo
}

func NewWorkoutHandler(workoutRepo *repository.WorkoutRepo) *WorkoutHandler {
	return &WorkoutHandler{workoutRepo: workoutRepo}
}

func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Title is required", r))
		return
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Date must be YYYY-MM-DD", r))
		return
	}

	workout := &models.Workout{
		UserID:         userID,
		Title:          req.Title,
		Type:           req.Type,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		Date:           date,
	}

	if err := h.workoutRepo.Create(r.Context(), workout); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save workout", r))
		return
	}

	writeJSON(w, http.StatusCreated, workout)
}

func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Date must be YYYY-MM-DD", r))
			return
		}
		workouts, err := h.workoutRepo.ListByUserAndDate(r.Context(), userID, date)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list workouts", r))
			return
		}
		writeJSON(w, http.StatusOK, workouts)
		return
	}

	workouts, err := h.workoutRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list workouts", r))
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid workout ID", r))
		return
	}

	affected, err := h.workoutRepo.Delete(r.Context(), id, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete workout", r))
		return
	}
	if affected == 0 {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Workout not found", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Workout deleted"})
}

func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}
