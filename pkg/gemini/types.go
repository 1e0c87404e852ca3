package gemini

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds Gemini client configuration
type Config struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	BaseURL    string // overrides the API endpoint, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Request is a single-turn generation request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
}

// Response is the text produced by the model
type Response struct {
	Text  string
	Usage *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
