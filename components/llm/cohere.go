package llm

import (
	"context"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
)

const DefaultCohereModel = "command-r"

// Cohere completes prompts through the Cohere chat API.
type Cohere struct {
	client *cohereClient.Client
	model  string
}

var _ Provider = (*Cohere)(nil)

func NewCohere(client *cohereClient.Client, model string) *Cohere {
	if model == "" {
		model = DefaultCohereModel
	}
	return &Cohere{
		client: client,
		model:  model,
	}
}

func (p *Cohere) Name() string {
	return "cohere"
}

func (p *Cohere) Model() string {
	return p.model
}

func (p *Cohere) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := float64(DefaultTemperature)
	resp, err := p.client.Chat(ctx, &cohere.ChatRequest{
		Message:     prompt,
		Model:       &p.model,
		Temperature: &temperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
