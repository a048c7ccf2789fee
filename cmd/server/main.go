package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blogcraft/internal/config"
	"blogcraft/internal/handler"
	"blogcraft/internal/infrastructure/database"
	"blogcraft/internal/logger"
	"blogcraft/internal/metrics"
	"blogcraft/internal/repository"
	"blogcraft/internal/router"
	"blogcraft/internal/service"
	"blogcraft/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)
	gin.SetMode(ginMode(cfg.AppEnv))

	if cfg.IsProduction() && cfg.AllowsAnyOrigin() {
		logger.Warn("CORS allows any origin in production")
	}

	// Apply schema migrations
	if cfg.MigrationsDir != "" {
		if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		URL:               cfg.DatabaseURL,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	v := validator.NewValidator()

	// Initialize services
	blogService := service.NewBlogService(repository.NewPostgresBlogRepository(pool), v)
	uploadService, err := service.NewUploadService(cfg.UploadDir, v)
	if err != nil {
		logger.Fatal("Failed to create upload service",
			slog.String("error", err.Error()))
	}

	engine := router.New(router.Handlers{
		Blog:   handler.NewBlogHandler(blogService),
		Upload: handler.NewUploadHandler(uploadService),
		Health: handler.NewHealthHandler(pool, uploadService.Dir()),
	}, router.Options{
		CORSAllowOrigins:    cfg.CORSAllowOrigins,
		UploadRatePerMinute: cfg.UploadRatePerMinute,
		UploadRateBurst:     cfg.UploadRateBurst,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("env", cfg.AppEnv),
			slog.String("upload_dir", cfg.UploadDir))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

func ginMode(appEnv string) string {
	switch appEnv {
	case config.EnvProduction:
		return gin.ReleaseMode
	case config.EnvTesting:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
