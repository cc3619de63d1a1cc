package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wellnessai-backend/internal/models"
)

const (
	exerciseDBDefaultBaseURL = "https://exercisedb.p.rapidapi.com"
	exerciseDBHost           = "exercisedb.p.rapidapi.com"

	// Results are capped to keep the prompt digest and the client's
	// preview cards small.
	maxCatalogResults = 5

	catalogCacheTTL = 10 * time.Minute
)

// Known ExerciseDB filter vocabularies. Matched as case-insensitive
// substrings of the user message.
var (
	exerciseBodyParts = []string{
		"back", "cardio", "chest", "lower arms", "lower legs",
		"neck", "shoulders", "upper arms", "upper legs", "waist",
	}
	exerciseTargetMuscles = []string{
		"abductors", "abs", "adductors", "biceps", "calves", "delts",
		"forearms", "glutes", "hamstrings", "lats", "pectorals",
		"quads", "traps", "triceps",
	}
)

// ExerciseDBService fetches exercises from the ExerciseDB API on RapidAPI.
type ExerciseDBService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *redis.Client // nil disables caching
}

func NewExerciseDBService(apiKey string, cache *redis.Client) *ExerciseDBService {
	return &ExerciseDBService{
		apiKey:     apiKey,
		baseURL:    exerciseDBDefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      cache,
	}
}

// FetchExercises scans the message for a body-part or target-muscle name and
// queries the matching scoped endpoint, falling back to the unscoped list.
// A body-part match takes precedence over a target-muscle match. The result
// is truncated to maxCatalogResults entries.
func (s *ExerciseDBService) FetchExercises(ctx context.Context, message string) ([]models.ExerciseItem, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: ExerciseDB API key is not configured", ErrCatalogUnavailable)
	}

	lower := strings.ToLower(message)

	path := "/exercises"
	if part := findMatch(lower, exerciseBodyParts); part != "" {
		path = "/exercises/bodyPart/" + url.PathEscape(part)
	} else if muscle := findMatch(lower, exerciseTargetMuscles); muscle != "" {
		path = "/exercises/target/" + url.PathEscape(muscle)
	}

	if items, ok := s.cacheGet(ctx, path); ok {
		return items, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", exerciseDBHost)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: ExerciseDB returned %d: %s", ErrCatalogUnavailable, resp.StatusCode, string(body))
	}

	var items []models.ExerciseItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decoding ExerciseDB response: %v", ErrCatalogUnavailable, err)
	}

	if len(items) > maxCatalogResults {
		items = items[:maxCatalogResults]
	}

	s.cacheSet(ctx, path, items)
	return items, nil
}

func (s *ExerciseDBService) cacheGet(ctx context.Context, path string) ([]models.ExerciseItem, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, "exercisedb:"+path).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.ExerciseItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (s *ExerciseDBService) cacheSet(ctx context.Context, path string, items []models.ExerciseItem) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, "exercisedb:"+path, raw, catalogCacheTTL).Err(); err != nil {
		log.Printf("exercisedb cache write failed: %v", err)
	}
}

func findMatch(lower string, candidates []string) string {
	for _, c := range candidates {
		if strings.Contains(lower, c) {
			return c
		}
	}
	return ""
}
