package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-intake/config"
	_ "task-intake/docs" // Swagger docs
	"task-intake/internal/extraction"
	"task-intake/internal/httpserver"
	"task-intake/internal/task/usecase"
	"task-intake/pkg/llmprovider"
	"task-intake/pkg/log"
)

// @title       Task Intake API
// @description Natural-language task tracker: free-text intake through an LLM extraction service, plus task CRUD.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Intake API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	for _, w := range cfg.Warnings() {
		logger.Warn(ctx, w)
	}

	// 3. Task store
	taskRepo, closeRepo, err := newTaskRepository(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize task store: %v", err)
		return
	}
	defer closeRepo()

	// 4. Extraction service
	var generator llmprovider.Generator
	providers, err := llmprovider.InitializeProviders(ctx, logger, cfg.LLM)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM provider configured: POST /api/tasks/parse will fail until one is set")
	case err != nil:
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	default:
		generator = llmprovider.NewManager(providers, llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			Timeout:         cfg.LLM.Timeout,
		}, logger)
	}
	extractor := extraction.New(logger, generator)

	// 5. Task use case
	taskUC := usecase.New(logger, taskRepo, extractor)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskUseCase:     taskUC,
		RateLimitPerMin: cfg.Intake.RateLimitPerMin,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
