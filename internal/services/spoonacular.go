package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wellnessai-backend/internal/models"
)

const spoonacularDefaultBaseURL = "https://api.spoonacular.com"

// Diet names Spoonacular accepts as a diet filter, matched as
// case-insensitive substrings of the user message.
var recipeDietTypes = []string{"vegetarian", "vegan", "gluten free", "keto", "paleo"}

var (
	// First number immediately preceding the word "calories" is read as the
	// maximum-calorie filter.
	calorieRe = regexp.MustCompile(`(\d+)\s*calories`)

	// Generic filler words stripped from the message to form the search term.
	recipeFillerRe = regexp.MustCompile(`(?i)recipe|meal|food|eat`)
)

// SpoonacularService searches recipes via the Spoonacular complexSearch API.
type SpoonacularService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *redis.Client // nil disables caching
}

func NewSpoonacularService(apiKey string, cache *redis.Client) *SpoonacularService {
	return &SpoonacularService{
		apiKey:     apiKey,
		baseURL:    spoonacularDefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      cache,
	}
}

// FetchRecipes issues one search carrying the cleaned-up message as the
// query, capped at maxCatalogResults, with enriched recipe information, plus
// a diet filter and/or a max-calorie ceiling when the message mentions them.
func (s *SpoonacularService) FetchRecipes(ctx context.Context, message string) ([]models.RecipeItem, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: Spoonacular API key is not configured", ErrCatalogUnavailable)
	}

	params := url.Values{}
	params.Set("number", fmt.Sprintf("%d", maxCatalogResults))
	params.Set("addRecipeInformation", "true")
	params.Set("query", strings.TrimSpace(recipeFillerRe.ReplaceAllString(message, "")))

	if diet := findMatch(strings.ToLower(message), recipeDietTypes); diet != "" {
		params.Set("diet", diet)
	}
	if m := calorieRe.FindStringSubmatch(message); m != nil {
		params.Set("maxCalories", m[1])
	}

	// Cache key is derived before the credential is added.
	cacheKey := "spoonacular:" + params.Encode()
	if items, ok := s.cacheGet(ctx, cacheKey); ok {
		return items, nil
	}

	params.Set("apiKey", s.apiKey)
	endpoint := s.baseURL + "/recipes/complexSearch?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: Spoonacular returned %d: %s", ErrCatalogUnavailable, resp.StatusCode, string(body))
	}

	var payload struct {
		Results []models.RecipeItem `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding Spoonacular response: %v", ErrCatalogUnavailable, err)
	}

	s.cacheSet(ctx, cacheKey, payload.Results)
	return payload.Results, nil
}

func (s *SpoonacularService) cacheGet(ctx context.Context, key string) ([]models.RecipeItem, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.RecipeItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (s *SpoonacularService) cacheSet(ctx context.Context, key string, items []models.RecipeItem) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, catalogCacheTTL).Err(); err != nil {
		log.Printf("spoonacular cache write failed: %v", err)
	}
}
