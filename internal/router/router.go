package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"wellnessai-backend/internal/handlers"
	"wellnessai-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	assistantHandler *handlers.AssistantHandler,
	workoutHandler *handlers.WorkoutHandler,
	nutritionHandler *handlers.NutritionHandler,
	userHandler *handlers.UserHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	assistantLimiter := middleware.NewRateLimiter(20, time.Minute).FlatErrors()

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// ──── Assistant (public, CORS pre-flighted by the chat widget) ────
		r.Route("/assistant", func(r chi.Router) {
			r.Use(assistantLimiter.Middleware)
			r.Post("/chat", assistantHandler.Chat)
		})

		// ──── Workout Routes ────
		r.Route("/workouts", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", workoutHandler.Create)
			r.Get("/", workoutHandler.List)
			r.Delete("/{id}", workoutHandler.Delete)
		})

		// ──── Nutrition Routes ────
		r.Route("/nutrition-logs", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", nutritionHandler.Create)
			r.Get("/", nutritionHandler.List)
			r.Delete("/{id}", nutritionHandler.Delete)
		})

		// ──── User Routes ────
		r.Route("/user", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/me", userHandler.GetMe)
			r.Put("/me", userHandler.UpdateMe)
		})
	})

	return r
}
