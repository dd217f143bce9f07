package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is
// reused; the only addition is the pair of identity headers OpenRouter asks
// calling applications to send.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	referer := cfg.Referer
	if referer == "" {
		referer = DefaultAppReferer
	}
	title := cfg.Title
	if title == "" {
		title = DefaultAppTitle
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = baseURL
	config.HTTPClient = &http.Client{
		Transport: &identityTransport{
			referer: referer,
			title:   title,
			base:    http.DefaultTransport,
		},
	}

	return &OpenRouterProvider{
		OpenAIProvider: newCompatProvider(config, cfg.Model),
	}, nil
}

// identityTransport injects the HTTP-Referer and X-Title headers that
// identify the calling application to OpenRouter.
type identityTransport struct {
	referer string
	title   string
	base    http.RoundTripper
}

func (t *identityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("HTTP-Referer", t.referer)
	clone.Header.Set("X-Title", t.title)
	return t.base.RoundTrip(clone)
}
