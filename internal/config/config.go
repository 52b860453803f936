package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured.
// It is a configuration error: fatal at startup, never a per-call failure.
var ErrMissingAPIKey = errors.New("config: GEMINI_API_KEY is not set")

// Config holds the application configuration.
type Config struct {
	// Gemini credential and model selection.
	APIKey         string `env:"GEMINI_API_KEY"`
	FlashModel     string `env:"GEMINI_FLASH_MODEL" envDefault:"gemini-2.5-flash"`
	ProModel       string `env:"GEMINI_PRO_MODEL" envDefault:"gemini-2.5-pro"`
	ThinkingBudget int32  `env:"GEMINI_THINKING_BUDGET" envDefault:"8192"`

	// Prompt size ceiling in bytes. Requests above it are rejected
	// before any network call.
	MaxPromptBytes int `env:"MAX_PROMPT_BYTES" envDefault:"262144"`

	// Retry policy for the LLM middleware. One attempt means a single
	// network call with no retry loop.
	RetryAttempts uint          `env:"LLM_RETRY_ATTEMPTS" envDefault:"1"`
	RetryDelay    time.Duration `env:"LLM_RETRY_DELAY" envDefault:"300ms"`
	RetryMaxDelay time.Duration `env:"LLM_RETRY_MAX_DELAY" envDefault:"5s"`

	// Optional LRU cache over structured responses. Zero disables it.
	CacheSize int `env:"LLM_CACHE_SIZE" envDefault:"0"`

	// Server configuration.
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8082"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (if present) and the process environment.
// It does not validate the credential; call Validate before
// constructing the Gemini client so unrelated features keep working
// without a key.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parts required for real model calls.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
