package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/2210030429cse-tech/learningplatform/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// logging middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *logrus.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, events, log)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from EDUMATE_* env vars, falling back
// to probing the standard API key variables.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, log *logrus.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events, log)
}
