package main

import (
	"context"
	"database/sql"
	"fmt"

	"smart-task-manager/config"
	"smart-task-manager/internal/parser"
	parserGateway "smart-task-manager/internal/parser/gateway"
	parserUsecase "smart-task-manager/internal/parser/usecase"
	"smart-task-manager/internal/recurring"
	recurringRest "smart-task-manager/internal/recurring/repository/rest"
	recurringSqlite "smart-task-manager/internal/recurring/repository/sqlite"
	recurringUsecase "smart-task-manager/internal/recurring/usecase"
	"smart-task-manager/internal/subtask"
	subtaskRest "smart-task-manager/internal/subtask/repository/rest"
	subtaskSqlite "smart-task-manager/internal/subtask/repository/sqlite"
	subtaskUsecase "smart-task-manager/internal/subtask/usecase"
	"smart-task-manager/pkg/backend"
	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/gemini"
	"smart-task-manager/pkg/log"
	"smart-task-manager/pkg/ratelimit"
	"smart-task-manager/pkg/sqlitedb"
)

// newParserUseCase builds the parser. A missing API key leaves the model
// unavailable instead of failing startup.
func newParserUseCase(ctx context.Context, cfg *config.Config, l log.Logger) (parser.UseCase, error) {
	var client gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		c, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini.New: %w", err)
		}
		client = c
		l.Infof(ctx, "Gemini initialized (model %s)", c.Model())
	} else {
		l.Warn(ctx, "GEMINI_API_KEY is missing, task parsing runs without a model")
	}

	gw := parserGateway.New(client, parserGateway.Config{
		Temperature: cfg.Gemini.Temperature,
		MaxTokens:   cfg.Gemini.MaxOutputTokens,
	}, l)

	dateMath, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		dateMath, _ = datemath.NewParser("UTC")
	}

	limiter := ratelimit.New(cfg.Parser.RateLimit, cfg.Parser.RateWindow)
	return parserUsecase.New(l, gw, limiter, dateMath), nil
}

type storage struct {
	subtaskUC   subtask.UseCase
	recurringUC recurring.UseCase
	db          *sql.DB
}

func (s storage) close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// newStorage picks the subtask and completion repositories for the configured driver.
func newStorage(ctx context.Context, cfg *config.Config, l log.Logger) (storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverREST:
		client, err := backend.New(cfg.Backend.URL, cfg.Backend.APIKey)
		if err != nil {
			return storage{}, fmt.Errorf("backend.New: %w", err)
		}
		l.Infof(ctx, "Storage: REST backend at %s", cfg.Backend.URL)
		return storage{
			subtaskUC:   subtaskUsecase.New(l, subtaskRest.New(client)),
			recurringUC: recurringUsecase.New(l, recurringRest.New(client)),
		}, nil

	case config.StorageDriverSQLite:
		db, err := sqlitedb.Init(cfg.Storage.SQLiteDir)
		if err != nil {
			return storage{}, fmt.Errorf("sqlitedb.Init: %w", err)
		}
		l.Infof(ctx, "Storage: SQLite in %s", cfg.Storage.SQLiteDir)
		return storage{
			subtaskUC:   subtaskUsecase.New(l, subtaskSqlite.New(db)),
			recurringUC: recurringUsecase.New(l, recurringSqlite.New(db)),
			db:          db,
		}, nil
	}
	return storage{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
