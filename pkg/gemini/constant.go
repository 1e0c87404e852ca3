package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single generation call
	DefaultTimeout = 30 * time.Second

	// DefaultTemperature keeps JSON output close to deterministic
	DefaultTemperature = 0.2

	// DefaultMaxOutputTokens caps one response
	DefaultMaxOutputTokens = 1024
)
