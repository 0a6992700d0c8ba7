package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindscale/internal/cache"
	"mindscale/internal/config"
	"mindscale/internal/repository"
	"mindscale/internal/service"
	"mindscale/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	testRepo := repository.NewTestRepository(mongoClient, cfg.MongoDB)
	sessionRepo := repository.NewSessionRepository(mongoClient, cfg.MongoDB)

	// Initialize caches
	popular := cache.NewPopularCache(rdb)
	var limiter cache.RateLimiter
	if cfg.RateLimitRPM > 0 {
		limiter = cache.NewRateLimiter(rdb, cfg.RateLimitRPM, time.Minute)
	}

	// Initialize services
	testSvc := service.NewTestService(testRepo, sessionRepo, popular)
	sessionSvc := service.NewSessionService(testRepo, sessionRepo, popular)

	router := rest.NewRouter(&rest.Container{
		TestService:    testSvc,
		SessionService: sessionSvc,
		RateLimiter:    limiter,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /api/v1/tests")
		log.Println("  GET  /api/v1/tests/{testType}")
		log.Println("  GET  /api/v1/tests/popular")
		log.Println("  POST /api/v1/tests/{testId}/submit")
		log.Println("  GET  /api/v1/sessions/{sessionId}")
		log.Println("  GET  /api/v1/users/{userId}/sessions")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
