package llm

import (
	"context"
	"fmt"

	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
)

// NewProvider builds a chat provider by name. Supported providers are
// gemini, openai, anthropic, and cohere.
func NewProvider(ctx context.Context, provider, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key for provider %q", provider)
	}
	switch provider {
	case "gemini":
		return NewGemini(ctx, apiKey, model)
	case "openai":
		return NewOpenAI(openai.NewClient(apiKey), model), nil
	case "anthropic":
		return NewAnthropic(anthropic.NewClient(apiKey), model), nil
	case "cohere":
		return NewCohere(cohereClient.NewClient(cohereOption.WithToken(apiKey)), model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
