package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"wellnessai-backend/internal/models"
	"wellnessai-backend/internal/services"
)

type assistant interface {
	Chat(ctx context.Context, message string, history []models.ChatTurn) (*models.AssistantReply, error)
}

// AssistantHandler is the boundary of the assistant pipeline. Unlike the rest
// of the API it answers errors as a flat {"error": string} object, which is
// the shape the chat widget expects.
type AssistantHandler struct {
	assistant assistant
}

func NewAssistantHandler(a assistant) *AssistantHandler {
	return &AssistantHandler{assistant: a}
}

func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAssistantError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeAssistantError(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.assistant.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		log.Printf("assistant chat failed: %v", err)
		if errors.Is(err, services.ErrModelUnavailable) {
			writeAssistantError(w, http.StatusBadGateway, "The assistant is unavailable right now. Please try again.")
			return
		}
		writeAssistantError(w, http.StatusInternalServerError, "An error occurred processing your request")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func writeAssistantError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
