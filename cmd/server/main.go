package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/blog-api/config"
	"github.com/ikkim/blog-api/internal/app/controller"
	"github.com/ikkim/blog-api/internal/app/repository"
	"github.com/ikkim/blog-api/internal/app/service"
	"github.com/ikkim/blog-api/internal/db"
	"github.com/ikkim/blog-api/internal/router"
	"github.com/ikkim/blog-api/internal/scheduler"
	"github.com/ikkim/blog-api/internal/websocket"
	"github.com/ikkim/blog-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.IsDevelopment(),
	})

	logger.Info("Starting Blog API Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   cfg.Log.Level,
	})

	// Initialize in-memory store
	store := db.NewStore()
	if cfg.Seed.SampleData {
		db.Seed(store)
	}

	// Post event feed
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := websocket.NewHub()
	go hub.Run(ctx)

	// Initialize repositories
	postRepo := repository.NewPostRepository(store)
	tagRepo := repository.NewTagRepository(store)

	// Initialize services
	postService := service.NewPostService(postRepo, hub)
	tagService := service.NewTagService(tagRepo)
	exportService := service.NewExportService(postRepo)

	// Initialize controllers
	postController := controller.NewPostController(postService, exportService)
	tagController := controller.NewTagController(tagService)
	feedController := controller.NewFeedController(hub)

	// Setup router
	r := router.NewRouter(
		postController,
		tagController,
		feedController,
		postService,
		cfg,
	)
	engine := r.Setup()

	var statsScheduler *scheduler.StatsScheduler
	if cfg.Scheduler.StatsCron != "" {
		statsScheduler = scheduler.NewStatsScheduler(postService, cfg.Scheduler.StatsCron)
		if err := statsScheduler.Start(); err != nil {
			logger.Warn("Store stats scheduler disabled", map[string]interface{}{
				"error": err.Error(),
			})
			statsScheduler = nil
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	if statsScheduler != nil {
		statsScheduler.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	cancel()

	logger.Info("Server stopped successfully")
}
