package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/devconnect/backend/internal/cache"
	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/handlers"
	"github.com/devconnect/backend/internal/services"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	client, db, err := services.DialMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	// Redis is optional; a missing server just disables caching.
	redisCache := cache.New(cfg.RedisAddr)
	defer redisCache.Close()

	// Initialize services with persistent storage
	userService := services.NewMongoUserService(ctx, db)
	profileService := services.NewMongoProfileService(ctx, db)
	postService := services.NewMongoPostService(ctx, db)
	githubService := services.NewGithubService(cfg.GithubAPIBase, cfg.GithubToken, redisCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, cfg.JWTExpiration)
	profileHandler := handlers.NewProfileHandler(profileService, userService, postService, githubService)
	postHandler := handlers.NewPostHandler(postService, userService)

	r := handlers.NewRouter(handlers.RouterDeps{
		Auth:           authHandler,
		Profiles:       profileHandler,
		Posts:          postHandler,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	log.Printf("DevConnect API server starting on %s", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
