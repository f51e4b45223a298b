package embedder

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is the embedding model used when none is configured.
const DefaultOpenAIModel = string(openai.SmallEmbedding3)

// OpenAI embeds text through the OpenAI embeddings API.
type OpenAI struct {
	client *openai.Client
	model  string
}

var _ Embedder = (*OpenAI)(nil)

func NewOpenAI(client *openai.Client, model string) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAI{
		client: client,
		model:  model,
	}
}

func (e *OpenAI) Model() string {
	return e.model
}

func (e *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("empty embedding response")
	}
	return resp.Data[0].Embedding, nil
}
