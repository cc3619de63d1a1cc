package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"wellnessai-backend/internal/config"
	"wellnessai-backend/internal/database"
	"wellnessai-backend/internal/handlers"
	"wellnessai-backend/internal/middleware"
	"wellnessai-backend/internal/repository"
	"wellnessai-backend/internal/router"
	"wellnessai-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting WellnessAI Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis (optional catalog cache) ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		log.Println("✓ Redis connected")
	} else {
		log.Println("- Redis not configured, catalog caching disabled")
	}

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	workoutRepo := repository.NewWorkoutRepo(pool)
	nutritionRepo := repository.NewNutritionRepo(pool)

	// ──── Step 5: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini client initialized")

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, jwtAuth)
	exerciseService := services.NewExerciseDBService(cfg.ExerciseDBAPIKey, redisClient)
	recipeService := services.NewSpoonacularService(cfg.SpoonacularAPIKey, redisClient)
	assistantService := services.NewAssistantService(geminiService, exerciseService, recipeService)

	if cfg.ExerciseDBAPIKey == "" {
		log.Println("- EXERCISEDB_API_KEY not set, exercise lookups will be skipped")
	}
	if cfg.SpoonacularAPIKey == "" {
		log.Println("- SPOONACULAR_API_KEY not set, recipe lookups will be skipped")
	}

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo)
	nutritionHandler := handlers.NewNutritionHandler(nutritionRepo)
	userHandler := handlers.NewUserHandler(userRepo)

	// ──── Step 6: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		assistantHandler,
		workoutHandler,
		nutritionHandler,
		userHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ WellnessAI Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
