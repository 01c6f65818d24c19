package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bodyai/backend/config"
	"github.com/bodyai/backend/internal/api"
	"github.com/bodyai/backend/internal/database"
	"github.com/bodyai/backend/internal/repository"
	"github.com/bodyai/backend/internal/router"
	"github.com/bodyai/backend/internal/server"
	"github.com/bodyai/backend/internal/service"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.New(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	var rdb *redis.Client
	if rdb, err = database.NewRedisClient(cfg); err != nil {
		// Chat history degrades gracefully without Redis.
		logger.Warn("redis unavailable, chat history disabled", zap.Error(err))
		rdb = nil
	}

	storage, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err))
	}

	users := repository.NewUserRepository(db)
	weights := repository.NewWeightRepository(db)
	routines := repository.NewRoutineRepository(db)
	recipes := repository.NewRecipeRepository(db)

	authService := service.NewAuthService(users, cfg.JWTSecret)
	weightService := service.NewWeightService(weights)
	routineService := service.NewRoutineService(routines)
	recipeService := service.NewRecipeService(recipes)
	chatService := service.NewChatService(cfg, routines, recipes, rdb, logger)
	imageService := service.NewImageService(storage)
	nutritionService := service.NewNutritionService()

	engine := router.Setup(cfg, router.Handlers{
		Auth:      api.NewAuthHandler(authService, logger),
		Weight:    api.NewWeightHandler(weightService, logger),
		Routine:   api.NewRoutineHandler(routineService, logger),
		Recipe:    api.NewRecipeHandler(recipeService, logger),
		Chat:      api.NewChatHandler(chatService, logger),
		Upload:    api.NewUploadHandler(imageService, logger),
		Nutrition: api.NewNutritionHandler(nutritionService, logger),
		Health:    api.NewHealthHandler(db, rdb, logger),
	}, authService)

	srv := server.New(engine, cfg.ServerPort, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("database close error", zap.Error(err))
	}
	logger.Info("server stopped")
}
