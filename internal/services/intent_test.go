package services

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected Topic
	}{
		{"workout keyword", "I need a good workout for my back", TopicWorkout},
		{"exercise keyword", "I have back pain, what exercises help?", TopicWorkout},
		{"gym keyword uppercase", "What should I do at the GYM today?", TopicWorkout},
		{"nutrition keyword", "suggest a vegan meal under 500 calories", TopicNutrition},
		{"recipe keyword", "any good recipe for dinner?", TopicNutrition},
		{"diet keyword", "is the keto diet safe?", TopicNutrition},
		{"neither", "how's the weather today", TopicNone},
		{"empty message", "", TopicNone},
		{"both sets, workout wins", "protein workout plan", TopicWorkout},
		{"both sets reversed order, workout still wins", "workout protein plan", TopicWorkout},
		{"muscle is workout, not nutrition", "build muscle fast", TopicWorkout},
		{"substring match inside word", "preworkouts are popular", TopicWorkout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyIntent(tc.message)
			if got != tc.expected {
				t.Errorf("ClassifyIntent(%q) = %v, want %v", tc.message, got, tc.expected)
			}
		})
	}
}

func TestClassifyIntent_Deterministic(t *testing.T) {
	msg := "protein workout"
	first := ClassifyIntent(msg)
	for i := 0; i < 10; i++ {
		if got := ClassifyIntent(msg); got != first {
			t.Fatalf("classification changed between calls: %v vs %v", first, got)
		}
	}
}

func TestTopicString(t *testing.T) {
	tests := []struct {
		topic    Topic
		expected string
	}{
		{TopicWorkout, "workout"},
		{TopicNutrition, "nutrition"},
		{TopicNone, "none"},
	}

	for _, tc := range tests {
		if got := tc.topic.String(); got != tc.expected {
			t.Errorf("Topic(%d).String() = %q, want %q", tc.topic, got, tc.expected)
		}
	}
}
