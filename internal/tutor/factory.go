package tutor

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with retry.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic, cfg.MaxTokens)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI, cfg.MaxTokens)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini, cfg.MaxTokens)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown tutor provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(base, cfg.Retry), nil
}
