package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedProvider struct {
	failures  int
	calls     int
	response  string
	lastInput string
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "test-model" }

func (p *scriptedProvider) Complete(_ context.Context, prompt string) (string, error) {
	p.calls++
	p.lastInput = prompt
	if p.calls <= p.failures {
		return "", errors.New("transient upstream failure")
	}
	return p.response, nil
}

func TestClientRetriesUntilSuccess(t *testing.T) {
	provider := &scriptedProvider{failures: 2, response: "  answer  "}
	client := NewClient(provider, ClientWithMaxRetries(2))
	got, err := client.Complete(context.Background(), "question")
	if err != nil {
		t.Fatalf("Expect success after retries, got error: %v", err)
	}
	if got != "answer" {
		t.Errorf("Expect trimmed response, got %q", got)
	}
	if provider.calls != 3 {
		t.Errorf("Expect 3 attempts, got %d", provider.calls)
	}
}

func TestClientExhaustsRetries(t *testing.T) {
	provider := &scriptedProvider{failures: 10}
	client := NewClient(provider, ClientWithMaxRetries(1))
	if _, err := client.Complete(context.Background(), "question"); err == nil {
		t.Fatal("Expect error after retries exhausted")
	}
	if provider.calls != 2 {
		t.Errorf("Expect 2 attempts, got %d", provider.calls)
	}
}

func TestClientHonorsCancellation(t *testing.T) {
	provider := &scriptedProvider{failures: 10}
	client := NewClient(provider, ClientWithMaxRetries(5), ClientWithTimeout(time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Complete(ctx, "question")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expect context cancellation, got %v", err)
	}
}

func TestInvokeExpandsTemplate(t *testing.T) {
	provider := &scriptedProvider{response: "done"}
	client := NewClient(provider)
	_, err := client.Invoke(context.Background(), "Question: {question}\nTools: {tools}", map[string]string{
		"question": "what is attention?",
		"tools":    "- arxiv_search",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := "Question: what is attention?\nTools: - arxiv_search"
	if provider.lastInput != want {
		t.Errorf("Expect expanded prompt %q, got %q", want, provider.lastInput)
	}
}

func TestExpandNoVars(t *testing.T) {
	if got := Expand("static prompt", nil); got != "static prompt" {
		t.Errorf("Expect template unchanged, got %q", got)
	}
}
