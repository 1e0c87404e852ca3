package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer    HTTPServerConfig
	Logger        LoggerConfig
	HTTPRateLimit HTTPRateLimitConfig

	// Task parsing
	Gemini GeminiConfig
	Parser ParserConfig

	// Persistence
	Storage StorageConfig
	Backend BackendConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// HTTPRateLimitConfig bounds requests per client IP.
type HTTPRateLimitConfig struct {
	RequestsPerMin int
}

// GeminiConfig configures the model behind task parsing. An empty APIKey
// disables parsing without failing startup.
type GeminiConfig struct {
	APIKey          string
	Model           string
	BaseURL         string // empty means the public Gemini endpoint
	Timeout         time.Duration
	Temperature     float64
	MaxOutputTokens int
}

// ParserConfig configures the process-wide model call budget.
type ParserConfig struct {
	RateLimit  int
	RateWindow time.Duration
	Timezone   string
}

// Storage drivers.
const (
	StorageDriverREST   = "rest"
	StorageDriverSQLite = "sqlite"
)

type StorageConfig struct {
	Driver    string
	SQLiteDir string
}

// BackendConfig points at the managed backend's REST endpoint.
type BackendConfig struct {
	URL    string
	APIKey string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.HTTPRateLimit.RequestsPerMin = viper.GetInt("http_rate_limit.requests_per_min")

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.BaseURL = viper.GetString("gemini.base_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	cfg.Gemini.MaxOutputTokens = viper.GetInt("gemini.max_output_tokens")

	// Parser
	cfg.Parser.RateLimit = viper.GetInt("parser.rate_limit")
	cfg.Parser.RateWindow = viper.GetDuration("parser.rate_window")
	cfg.Parser.Timezone = viper.GetString("parser.timezone")

	// Persistence
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.SQLiteDir = viper.GetString("storage.sqlite_dir")
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.APIKey = expandEnvVar(viper.GetString("backend.api_key"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Driver {
	case StorageDriverSQLite:
		if cfg.Storage.SQLiteDir == "" {
			return fmt.Errorf("storage.sqlite_dir is required for the sqlite driver")
		}
	case StorageDriverREST:
		if cfg.Backend.URL == "" {
			return fmt.Errorf("backend.url is required for the rest driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q (want %q or %q)", cfg.Storage.Driver, StorageDriverREST, StorageDriverSQLite)
	}

	if cfg.Parser.RateLimit <= 0 {
		return fmt.Errorf("parser.rate_limit must be positive")
	}
	if cfg.Parser.RateWindow <= 0 {
		return fmt.Errorf("parser.rate_window must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("http_rate_limit.requests_per_min", 120)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("gemini.temperature", 0.1)
	viper.SetDefault("gemini.max_output_tokens", 1024)

	viper.SetDefault("parser.rate_limit", 60)
	viper.SetDefault("parser.rate_window", "60s")
	viper.SetDefault("parser.timezone", "America/Sao_Paulo")

	viper.SetDefault("storage.driver", StorageDriverSQLite)
	viper.SetDefault("storage.sqlite_dir", "./data")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
