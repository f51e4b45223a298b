package llm

import (
	"context"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

const (
	DefaultAnthropicModel     = anthropic.ModelClaude3Dot5SonnetLatest
	defaultAnthropicMaxTokens = 2048
)

// Anthropic completes prompts through the Anthropic messages API.
type Anthropic struct {
	client *anthropic.Client
	model  anthropic.Model
}

var _ Provider = (*Anthropic)(nil)

func NewAnthropic(client *anthropic.Client, model string) *Anthropic {
	m := anthropic.Model(model)
	if model == "" {
		m = DefaultAnthropicModel
	}
	return &Anthropic{
		client: client,
		model:  m,
	}
}

func (p *Anthropic) Name() string {
	return "anthropic"
}

func (p *Anthropic) Model() string {
	return string(p.model)
}

func (p *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := float32(DefaultTemperature)
	resp, err := p.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       p.model,
		MaxTokens:   defaultAnthropicMaxTokens,
		Temperature: &temperature,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	return resp.GetFirstContentText(), nil
}
