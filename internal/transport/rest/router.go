package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"mindscale/internal/cache"
	"mindscale/internal/service"
	"mindscale/internal/transport/rest/handler"
	"mindscale/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	TestService    *service.TestService
	SessionService *service.SessionService
	RateLimiter    cache.RateLimiter
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	testHandler := handler.NewTestHandler(c.TestService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/api/v1").Subrouter()
	if c.RateLimiter != nil {
		rateMW := middleware.NewRateLimitMiddleware(c.RateLimiter)
		v1.Use(rateMW.Limit)
	}

	v1.HandleFunc("/tests", testHandler.Create).Methods("POST", "OPTIONS")
	// Register /tests/popular before the {testType} route so "popular"
	// never resolves as a test type.
	v1.HandleFunc("/tests/popular", testHandler.Popular).Methods("GET", "OPTIONS")
	v1.HandleFunc("/tests/{testType}", testHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/tests/{testId}/submit", sessionHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/users/{userId}/sessions", sessionHandler.ListByUser).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
