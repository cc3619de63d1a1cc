package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wellnessai-backend/internal/models"
)

const (
	geminiModelName = "gemini-3-flash-preview"

	// Generation parameters for assistant chat. Fixed rather than
	// per-request tunable.
	chatTemperature     = 0.7
	chatMaxOutputTokens = 1000

	// Only the most recent turns are replayed into the session. The client
	// owns the full log; unbounded replay is a resource-exhaustion risk.
	maxHistoryTurns = 20
)

// GeminiService wraps the hosted Gemini chat-completion API.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(apiKey string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModelName)
	model.SetTemperature(chatTemperature)
	model.SetMaxOutputTokens(chatMaxOutputTokens)

	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Converse opens a chat session seeded with the prior turns and submits the
// composed prompt as the newest turn, blocking until the full reply text is
// available. Transport failures, non-success statuses, and empty candidates
// all surface as ErrModelUnavailable.
func (s *GeminiService) Converse(ctx context.Context, history []models.ChatTurn, prompt string) (string, error) {
	cs := s.model.StartChat()
	cs.History = mapHistory(history)

	resp, err := cs.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("%w: Gemini returned no text candidates", ErrModelUnavailable)
	}

	return text, nil
}

// mapHistory converts client turns to Gemini contents, keeping the trailing
// maxHistoryTurns entries. The client already speaks the Gemini role
// vocabulary; "assistant" is tolerated as an alias for "model".
func mapHistory(history []models.ChatTurn) []*genai.Content {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := turn.Role
		if role == "assistant" {
			role = "model"
		}
		if role != "user" && role != "model" {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Parts)},
		})
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
