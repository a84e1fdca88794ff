// Package llm wraps the hosted chat-completion providers used by the analysis
// and design stages.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"docstyle/internal/config"
)

// ChatModel is the subset of the eino chat model contract the pipeline relies on.
type ChatModel = model.BaseChatModel

const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
)

var defaultModels = map[string]string{
	ProviderOpenAI: "gpt-3.5-turbo",
	ProviderClaude: "claude-3-5-haiku-latest",
	ProviderGemini: "gemini-2.0-flash",
}

// claudeMaxTokens is the construction-time ceiling the claude client requires.
// Every GenerateJSON call passes model.WithMaxTokens, which overrides it.
const claudeMaxTokens = 1024

// ErrMissingAPIKey is returned when no credential is configured.
var ErrMissingAPIKey = errors.New("ai api key not configured")

// NewChatModel builds the chat model for cfg.Provider.
// The HTTP client carries tracing only; no client-side timeout is applied.
func NewChatModel(ctx context.Context, cfg config.AIConfig) (ChatModel, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultModels[provider]
	}
	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	switch provider {
	case ProviderOpenAI:
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      modelName,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("init openai chat model: %w", err)
		}
		return cm, nil
	case ProviderClaude:
		var baseURL *string
		if cfg.BaseURL != "" {
			baseURL = &cfg.BaseURL
		}
		cm, err := claude.NewChatModel(ctx, &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     modelName,
			BaseURL:   baseURL,
			MaxTokens: claudeMaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("init claude chat model: %w", err)
		}
		return cm, nil
	case ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("init gemini client: %w", err)
		}
		cm, err := gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  modelName,
		})
		if err != nil {
			return nil, fmt.Errorf("init gemini chat model: %w", err)
		}
		return cm, nil
	default:
		return nil, fmt.Errorf("invalid ai provider: %s", provider)
	}
}
