// Package main is the entry point for the Finance Planner API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/config"
	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/infra/cache"
	"github.com/finance-planner/backend/internal/infra/db"
	"github.com/finance-planner/backend/internal/infra/dependency"
	"github.com/finance-planner/backend/internal/infra/server/router"
	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/notification"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finance Planner API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.TaxRecordModel{},
			&model.TaxDocumentModel{},
			&model.BudgetModel{},
			&model.BudgetTransactionModel{},
			&model.EstatePlanModel{},
			&model.AssetModel{},
			&model.BeneficiaryModel{},
			&model.GuardianModel{},
			&model.EstateDocumentModel{},
			&model.NotificationQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis connection (optional; summaries fall back to the database)
	var redisClient *redis.Client
	redisCache, err := cache.NewRedisConnection(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, running without summary cache",
			"error", err,
		)
	} else {
		redisClient = redisCache.Client()
		defer func() {
			if err := redisCache.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}

	// Pick the notification sender based on configuration
	var sender adapter.NotificationSender
	if cfg.Notification.ResendAPIKey != "" {
		sender = notification.NewResendClient(
			cfg.Notification.ResendAPIKey,
			cfg.Notification.FromName,
			cfg.Notification.FromEmail,
		)
	} else {
		slog.Warn("RESEND_API_KEY not set, notifications will be recorded but not delivered")
		sender = notification.NewMockSender()
	}

	// Wire dependencies and background workers
	var engine http.Handler
	backgroundCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	if database != nil {
		injector, err := dependency.NewInjector(cfg, database.DB(), redisClient, sender)
		if err != nil {
			slog.Error("Failed to wire dependencies", "error", err)
			os.Exit(1)
		}
		engine = injector.Router.Setup(cfg.Server.Environment)

		if cfg.Notification.WorkerEnabled {
			go injector.Worker.Start(backgroundCtx)
		}
		if cfg.Alerts.Enabled {
			go injector.Scheduler.Start(backgroundCtx)
		}
	} else {
		// Health-only mode: API routes need a database
		slog.Warn("API routes not initialized due to missing database connection")
		healthController := controller.NewHealthController(
			func() bool { return false },
			func() bool { return redisClient != nil },
		)
		r := router.NewRouter(healthController, nil, nil, nil, nil, nil, nil)
		engine = r.Setup(cfg.Server.Environment)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
