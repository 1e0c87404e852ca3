package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-manager/config"
	_ "smart-task-manager/docs" // Swagger docs
	"smart-task-manager/internal/httpserver"
	"smart-task-manager/internal/middleware"
	"smart-task-manager/pkg/log"
)

// @title       Smart Task Manager API
// @description Natural-language task parsing, subtasks and recurring completions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Smart Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser domain
	parserUC, err := newParserUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize parser: %v", err)
		os.Exit(1)
	}

	// 4. Storage-backed domains
	store, err := newStorage(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.close()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.HTTPRateLimit.RequestsPerMin),
		ParserUC:    parserUC,
		SubtaskUC:   store.subtaskUC,
		RecurringUC: store.recurringUC,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
