package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func newTestSpoonacular(t *testing.T, handler http.HandlerFunc) *SpoonacularService {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc := NewSpoonacularService("test-key", nil)
	svc.baseURL = ts.URL
	return svc
}

func TestFetchRecipes_QueryParameters(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected map[string]string
		absent   []string
	}{
		{
			name:    "diet and calorie filters extracted",
			message: "suggest a vegan meal under 500 calories",
			expected: map[string]string{
				"diet":                 "vegan",
				"maxCalories":          "500",
				"number":               "5",
				"addRecipeInformation": "true",
			},
		},
		{
			name:    "multi-word diet type",
			message: "gluten free food ideas",
			expected: map[string]string{
				"diet": "gluten free",
			},
			absent: []string{"maxCalories"},
		},
		{
			name:     "no filters",
			message:  "something tasty for dinner with nutrition info",
			expected: map[string]string{"number": "5"},
			absent:   []string{"diet", "maxCalories"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotParams url.Values
			svc := newTestSpoonacular(t, func(w http.ResponseWriter, r *http.Request) {
				gotParams = r.URL.Query()
				w.Write([]byte(`{"results":[{"title":"test recipe"}]}`))
			})

			if _, err := svc.FetchRecipes(context.Background(), tc.message); err != nil {
				t.Fatalf("FetchRecipes failed: %v", err)
			}

			if gotParams.Get("apiKey") != "test-key" {
				t.Errorf("apiKey = %q, want test-key", gotParams.Get("apiKey"))
			}
			for key, want := range tc.expected {
				if got := gotParams.Get(key); got != want {
					t.Errorf("param %s = %q, want %q", key, got, want)
				}
			}
			for _, key := range tc.absent {
				if gotParams.Has(key) {
					t.Errorf("param %s should be absent, got %q", key, gotParams.Get(key))
				}
			}
		})
	}
}

func TestFetchRecipes_StripsFillerWords(t *testing.T) {
	var gotQuery string
	svc := newTestSpoonacular(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"results":[]}`))
	})

	if _, err := svc.FetchRecipes(context.Background(), "recipe for pasta"); err != nil {
		t.Fatalf("FetchRecipes failed: %v", err)
	}
	if gotQuery != "for pasta" {
		t.Errorf("query = %q, want %q", gotQuery, "for pasta")
	}
}

func TestFetchRecipes_UpstreamError(t *testing.T) {
	svc := newTestSpoonacular(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "payment required", http.StatusPaymentRequired)
	})

	_, err := svc.FetchRecipes(context.Background(), "vegan meal")
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("got error %v, want ErrCatalogUnavailable", err)
	}
}

func TestFetchRecipes_MissingKey(t *testing.T) {
	svc := NewSpoonacularService("", nil)

	_, err := svc.FetchRecipes(context.Background(), "vegan meal")
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("got error %v, want ErrCatalogUnavailable", err)
	}
}

func TestCalorieExtraction(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"under 500 calories please", "500"},
		{"a 1200calories day plan", "1200"},
		{"no number here", ""},
		{"calories without a number", ""},
		{"first 300 calories then 600 calories", "300"},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			var got string
			if m := calorieRe.FindStringSubmatch(tc.message); m != nil {
				got = m[1]
			}
			if got != tc.expected {
				t.Errorf("calorie match for %q = %q, want %q", tc.message, got, tc.expected)
			}
		})
	}
}
