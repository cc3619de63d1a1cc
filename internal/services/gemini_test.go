package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"wellnessai-backend/internal/models"
)

func TestMapHistory_Roles(t *testing.T) {
	history := []models.ChatTurn{
		{Role: "user", Parts: "first"},
		{Role: "model", Parts: "second"},
		{Role: "assistant", Parts: "third"},
		{Role: "system", Parts: "ignored"},
	}

	contents := mapHistory(history)

	if len(contents) != 3 {
		t.Fatalf("got %d contents, want 3 (unknown roles dropped)", len(contents))
	}
	if contents[0].Role != "user" || contents[1].Role != "model" {
		t.Errorf("roles not preserved: %s, %s", contents[0].Role, contents[1].Role)
	}
	if contents[2].Role != "model" {
		t.Errorf("assistant alias should map to model, got %s", contents[2].Role)
	}
	if text, ok := contents[0].Parts[0].(genai.Text); !ok || string(text) != "first" {
		t.Errorf("content text not preserved: %v", contents[0].Parts[0])
	}
}

func TestMapHistory_CapsAtMaxTurns(t *testing.T) {
	history := make([]models.ChatTurn, maxHistoryTurns+10)
	for i := range history {
		role := "user"
		if i%2 == 1 {
			role = "model"
		}
		history[i] = models.ChatTurn{Role: role, Parts: fmt.Sprintf("turn %d", i)}
	}

	contents := mapHistory(history)

	if len(contents) != maxHistoryTurns {
		t.Fatalf("got %d contents, want %d", len(contents), maxHistoryTurns)
	}
	// The kept window is the trailing one.
	first, _ := contents[0].Parts[0].(genai.Text)
	if string(first) != "turn 10" {
		t.Errorf("window should start at turn 10, got %q", string(first))
	}
}

func TestMapHistory_Empty(t *testing.T) {
	if contents := mapHistory(nil); len(contents) != 0 {
		t.Errorf("got %d contents for nil history, want 0", len(contents))
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{
			name:     "no candidates",
			resp:     &genai.GenerateContentResponse{},
			expected: "",
		},
		{
			name: "nil content candidate",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: nil}},
			},
			expected: "",
		},
		{
			name: "concatenates text parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{
						genai.Text("Start with a warmup. "),
						genai.Text("Then three sets of rows."),
					}},
				}},
			},
			expected: "Start with a warmup. Then three sets of rows.",
		},
		{
			name: "skips non-text parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{
						genai.Blob{MIMEType: "image/png"},
						genai.Text("text only"),
					}},
				}},
			},
			expected: "text only",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractText(tc.resp); got != tc.expected {
				t.Errorf("extractText = %q, want %q", got, tc.expected)
			}
		})
	}
}

// A response whose candidates carry no text must trim to empty, which is
// what Converse rejects as a model failure.
func TestExtractText_WhitespaceOnlyTrimsEmpty(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("  \n\t ")}},
		}},
	}

	if got := strings.TrimSpace(extractText(resp)); got != "" {
		t.Errorf("trimmed text = %q, want empty", got)
	}
}
