package config

import (
	"os"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/wellness_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
}

func TestLoad_RequiredKeys(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	if cfg.DatabaseURL != "postgres://localhost:5432/wellness_test" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.GeminiAPIKey != "test-gemini-key" {
		t.Errorf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
	}
}

func TestLoad_PanicsWithoutGeminiKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_API_KEY", "")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when GEMINI_API_KEY is missing")
		}
	}()
	Load()
}

func TestLoad_CatalogKeysOptional(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("EXERCISEDB_API_KEY", "")
	t.Setenv("SPOONACULAR_API_KEY", "")
	t.Setenv("REDIS_URL", "")

	cfg := Load()

	if cfg.ExerciseDBAPIKey != "" || cfg.SpoonacularAPIKey != "" {
		t.Error("catalog keys should default to empty, not panic")
	}
	if cfg.RedisURL != "" {
		t.Error("RedisURL should default to empty")
	}
}

func TestLoad_DBMaxConns(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("DB_MAX_CONNS", "")
	if got := Load().DBMaxConns; got != 10 {
		t.Errorf("default DBMaxConns = %d, want 10", got)
	}

	t.Setenv("DB_MAX_CONNS", "25")
	if got := Load().DBMaxConns; got != 25 {
		t.Errorf("DBMaxConns = %d, want 25", got)
	}

	t.Setenv("DB_MAX_CONNS", "lots")
	if got := Load().DBMaxConns; got != 10 {
		t.Errorf("non-numeric DBMaxConns = %d, want default 10", got)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	t.Setenv("TEST_REQUIRED", "value123")

	result := mustGetEnv("TEST_REQUIRED")
	if result != "value123" {
		t.Errorf("Expected 'value123', got %q", result)
	}
}
