package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrNoProvider is returned when no LLM provider is configured.
var ErrNoProvider = errors.New("llm: no provider configured")

// Client generates a completion for a single system + user prompt pair.
type Client interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// Config selects and authenticates a provider.
type Config struct {
	Provider     string // "openai", "anthropic" or empty
	OpenAIKey    string
	AnthropicKey string
	Model        string
}

// New builds the configured client. It returns ErrNoProvider when the
// provider is empty or its key is missing.
func New(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, ErrNoProvider
		}
		return NewOpenAIClient(cfg.OpenAIKey, cfg.Model), nil
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return nil, ErrNoProvider
		}
		return NewAnthropicClient(cfg.AnthropicKey, cfg.Model), nil
	case "":
		return nil, ErrNoProvider
	default:
		return nil, errors.New("llm: unknown provider " + cfg.Provider)
	}
}
