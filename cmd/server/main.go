package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense_api/internal/config"
	"expense_api/internal/handler"
	"expense_api/internal/logger"
	"expense_api/internal/repository"
	"expense_api/internal/service"
	"expense_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if envErr != nil {
		zlog.Info("No .env file found or error loading, relying on environment variables")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database Connection ---
	// One attempt only; the process cannot serve anything without the store.
	dbPool, err := config.ConnectDB(context.Background(), cfg.DB)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()
	zlog.Info("Connected to PostgreSQL", zap.String("host", cfg.DB.Host), zap.String("db", cfg.DB.Name))

	if err := config.EnsureSchema(context.Background(), dbPool); err != nil {
		zlog.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	expenseRepo := repository.NewExpenseRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, utils.NewBcryptHasher(utils.DefaultCost))
	expenseService := service.NewExpenseService(expenseRepo)

	// --- Setup Router ---
	if cfg.HashPreviewEnabled {
		zlog.Warn("GET /password/:raw is enabled; disable HASH_PREVIEW_ENABLED outside development")
	}
	router := handler.NewRouter(
		handler.RouterConfig{
			RoutingVariant:     cfg.RoutingVariant,
			HashPreviewEnabled: cfg.HashPreviewEnabled,
		},
		zlog,
		handler.NewAuthHandler(authService, zlog),
		handler.NewExpenseHandler(expenseService, zlog),
		handler.NewHealthHandler(dbPool),
	)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		zlog.Info("Server is running", zap.String("port", cfg.ServerPort), zap.String("routing", cfg.RoutingVariant))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("listen failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting")
}
