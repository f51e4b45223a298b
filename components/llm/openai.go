package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAI completes prompts through the OpenAI chat API.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
}

var _ Provider = (*OpenAI)(nil)

func NewOpenAI(client *openai.Client, model string) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAI{
		client:      client,
		model:       model,
		temperature: DefaultTemperature,
	}
}

func (p *OpenAI) Name() string {
	return "openai"
}

func (p *OpenAI) Model() string {
	return p.model
}

func (p *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty openai response")
	}
	return resp.Choices[0].Message.Content, nil
}
