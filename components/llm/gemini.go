package llm

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// Gemini completes prompts through the Gemini API.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

var _ Provider = (*Gemini)(nil)

// NewGemini builds a Gemini provider from an API key.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{
		client:      client,
		model:       model,
		temperature: DefaultTemperature,
	}, nil
}

func (p *Gemini) Name() string {
	return "gemini"
}

func (p *Gemini) Model() string {
	return p.model
}

func (p *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(p.temperature),
	}
	response, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	text := response.Text()
	if text == "" {
		return "", errors.New("empty gemini response")
	}
	return text, nil
}
