package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-server/config"
	"news-server/handlers"
	"news-server/logger"
	"news-server/middleware"
	"news-server/repository"
	"news-server/services"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Development: cfg.Server.Env != "production"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// MongoDB is the only durable state; connect once and tear down on exit.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		cancel()
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		cancel()
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	cancel()
	log.Info("Connected to MongoDB")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Errorf("MongoDB disconnect failed: %v", err)
		}
	}()

	userRepo, err := repository.NewMongoUserRepository(client.Database(cfg.Mongo.Database), cfg.Mongo.UserCollection)
	if err != nil {
		log.Fatalf("Failed to initialize user repository: %v", err)
	}

	// Redis only caches news pages; running without it just disables caching.
	var cache *redis.Client
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warnf("Redis unavailable, news caching disabled: %v", err)
	} else {
		cache = rdb
		defer rdb.Close()
	}

	userService := services.NewUserService(userRepo, log)
	newsService := services.NewNewsService(cache, log, cfg.News.BaseURL, cfg.News.APIKey, cfg.News.PageSize, cfg.News.CacheTTL)

	authHandler := handlers.NewAuthHandler(userService)
	profileHandler := handlers.NewProfileHandler(userService)
	favoritesHandler := handlers.NewFavoritesHandler(userService)
	newsHandler := handlers.NewNewsHandler(newsService)

	r := handlers.NewRouter(authHandler, profileHandler, favoritesHandler, newsHandler)
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.RecoveryMiddleware(log))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Info("Server stopped gracefully")
}
