package gateway

import (
	"context"
	"fmt"

	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/gemini"
	pkgLog "smart-task-manager/pkg/log"
)

// Config tunes generation requests.
type Config struct {
	Temperature float64
	MaxTokens   int
}

type implGateway struct {
	client gemini.IGemini
	cfg    Config
	l      pkgLog.Logger
}

// New adapts a Gemini client to parser.Gateway. A nil client yields a
// gateway that reports itself unavailable.
func New(client gemini.IGemini, cfg Config, l pkgLog.Logger) parser.Gateway {
	return &implGateway{client: client, cfg: cfg, l: l}
}

// Available implements parser.Gateway.
func (g *implGateway) Available() bool {
	return g.client != nil
}

// Generate implements parser.Gateway.
func (g *implGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.Available() {
		return "", parser.ErrModelUnavailable
	}

	resp, err := g.client.GenerateContent(ctx, &gemini.Request{
		Prompt:      prompt,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		g.l.Warn(ctx, "LLM generation failed",
			"model", g.client.Model(),
			"error", err.Error(),
		)
		return "", fmt.Errorf("%w: %v", parser.ErrGenerationFailed, err)
	}

	inputTokens, outputTokens := 0, 0
	if resp.Usage != nil {
		inputTokens, outputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	g.l.Info(ctx, "LLM generation successful",
		"model", g.client.Model(),
		"input_tokens", inputTokens,
		"output_tokens", outputTokens,
	)

	return resp.Text, nil
}
