package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dancenavi/internal/cache"
	"dancenavi/internal/catalog"
	"dancenavi/internal/config"
	"dancenavi/internal/repository"
	"dancenavi/internal/service"
	"dancenavi/internal/transport/rest"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// @title DanceNavi Diagnosis API
// @version 1.0
// @description Dance class/instructor diagnosis engine for multi-tenant schools
// @host localhost:8080
// @BasePath /v1
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis")

	// Repositories; campus/genre lookups go through the Redis read-through
	campusRepo := cache.NewCachedCampusRepo(repository.NewCampusRepo(db), rdb)
	genreRepo := cache.NewCachedGenreRepo(repository.NewGenreRepo(db), rdb)
	courseRepo := repository.NewCourseRepo(db)
	lessonRepo := repository.NewLessonRepo(db)
	instructorRepo := repository.NewInstructorRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// Services
	cat := catalog.Default()
	authSvc := service.NewAuthService()
	diagnosisSvc := service.NewDiagnosisService(
		cat, campusRepo, genreRepo, courseRepo, lessonRepo, instructorRepo, resultRepo, logger,
	)

	router := rest.NewRouter(&rest.Container{
		AuthService:      authSvc,
		DiagnosisService: diagnosisSvc,
		Catalog:          cat,
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
