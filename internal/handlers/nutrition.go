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

type NutritionHandler struct {
	nutritionRepo *repository.NutritionRepo
}

func NewNutritionHandler(nutritionRepo *repository.NutritionRepo) *NutritionHandler {
	return &NutritionHandler{nutritionRepo: nutritionRepo}
}

func (h *NutritionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateNutritionLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.FoodName == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Food name is required", r))
		return
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Date must be YYYY-MM-DD", r))
		return
	}

	entry := &models.NutritionLog{
		UserID:   userID,
		FoodName: req.FoodName,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		MealType: req.MealType,
		Date:     date,
	}

	if err := h.nutritionRepo.Create(r.Context(), entry); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save nutrition log", r))
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *NutritionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Date must be YYYY-MM-DD", r))
			return
		}
		logs, err := h.nutritionRepo.ListByUserAndDate(r.Context(), userID, date)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list nutrition logs", r))
			return
		}
		writeJSON(w, http.StatusOK, logs)
		return
	}

	logs, err := h.nutritionRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list nutrition logs", r))
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

func (h *NutritionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid nutrition log ID", r))
		return
	}

	affected, err := h.nutritionRepo.Delete(r.Context(), id, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete nutrition log", r))
		return
	}
	if affected == 0 {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Nutrition log not found", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Nutrition log deleted"})
}
