package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "openrouter", cfg.Provider)
	require.Equal(t, "xiaomi/mimo-v2-flash:free", cfg.OpenRouter.Model)
	require.Equal(t, DefaultAppReferer, cfg.OpenRouter.Referer)
	require.Equal(t, DefaultAppTitle, cfg.OpenRouter.Title)
	require.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("EDUMATE_LLM_PROVIDER", "openai")
	t.Setenv("EDUMATE_OPENAI_API_KEY", "sk-test")
	t.Setenv("EDUMATE_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()

	require.Equal(t, "openai", cfg.Provider)
	require.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	require.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	require.NoError(t, cfg.Validate())
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate())

	cfg.OpenRouter.APIKey = "or-test"
	require.NoError(t, cfg.Validate())
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "aol"
	require.Error(t, cfg.Validate())
}

func TestValidateMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	require.NoError(t, cfg.Validate())
}

func TestDiscoverConfigPriority(t *testing.T) {
	for _, v := range []string{
		"OPENROUTER_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(v, "")
	}

	_, ok := DiscoverConfig()
	require.False(t, ok)

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	require.Equal(t, "gemini", cfg.Provider)

	// OpenRouter wins over any other configured key.
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok = DiscoverConfig()
	require.True(t, ok)
	require.Equal(t, "openrouter", cfg.Provider)
	require.Equal(t, "or-key", cfg.OpenRouter.APIKey)
}
