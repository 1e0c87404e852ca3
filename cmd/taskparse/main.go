package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"smart-task-manager/config"
	"smart-task-manager/internal/model"
	"smart-task-manager/internal/parser"
	parserGateway "smart-task-manager/internal/parser/gateway"
	parserUsecase "smart-task-manager/internal/parser/usecase"
	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/gemini"
	"smart-task-manager/pkg/log"
	"smart-task-manager/pkg/ratelimit"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "taskparse",
		Short:         "Parse tasks and suggest subtasks from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(subtasksCmd())
	return rootCmd
}

func parseCmd() *cobra.Command {
	var projects []string

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Extract a structured task from free text",
		Long: `Extract title, due date, priority and project from free text.

Examples:
  taskparse parse "Reunião com cliente amanhã às 14h, prioridade alta"
  taskparse parse "Campanha de email" --project "Marketing Digital" --project Vendas`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildUseCase(cmd)
			if err != nil {
				return err
			}

			in := parser.ParseTaskInput{Text: args[0]}
			for i, name := range projects {
				in.Projects = append(in.Projects, model.Project{ID: fmt.Sprintf("cli-%d", i+1), Name: name})
			}

			return printJSON(cmd, uc.ParseTask(cmd.Context(), in))
		},
	}

	cmd.Flags().StringArrayVarP(&projects, "project", "p", nil, "known project name (repeatable)")
	return cmd
}

func subtasksCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "subtasks [title]",
		Short: "Suggest up to five subtasks for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildUseCase(cmd)
			if err != nil {
				return err
			}

			out, err := uc.SuggestSubtasks(cmd.Context(), parser.SuggestSubtasksInput{
				Title:       args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("suggest subtasks: %w", err)
			}
			return printJSON(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	return cmd
}

// buildUseCase wires the parser for one command. Logs go to stderr so
// stdout only ever carries the JSON result.
func buildUseCase(cmd *cobra.Command) (parser.UseCase, error) {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
		Output:   cmd.ErrOrStderr(),
	})

	var client gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		client, err = gemini.New(ctx, gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini.New: %w", err)
		}
	}

	dateMath, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Parser.Timezone, err)
	}

	gw := parserGateway.New(client, parserGateway.Config{
		Temperature: cfg.Gemini.Temperature,
		MaxTokens:   cfg.Gemini.MaxOutputTokens,
	}, l)
	limiter := ratelimit.New(cfg.Parser.RateLimit, cfg.Parser.RateWindow)

	return parserUsecase.New(l, gw, limiter, dateMath), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
