package llm

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a single completion request.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries is the number of additional attempts after a
	// failed completion.
	DefaultMaxRetries = 2
	// DefaultTemperature keeps decision and synthesis output stable.
	DefaultTemperature = 0.1
)

// Provider is a single chat completion backend.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client wraps a Provider with per request timeout, retry, and prompt
// template expansion.
type Client struct {
	provider   Provider
	logger     *zap.Logger
	timeout    time.Duration
	maxRetries int
}

type ClientOption func(*Client)

func ClientWithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func ClientWithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func ClientWithMaxRetries(maxRetries int) ClientOption {
	return func(c *Client) {
		c.maxRetries = maxRetries
	}
}

func NewClient(provider Provider, opts ...ClientOption) *Client {
	ret := &Client{
		provider:   provider,
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}

func (c *Client) Provider() Provider {
	return c.provider
}

// Complete runs one completion with timeout and retry. The last error
// is returned when every attempt fails.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying completion",
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		response, err := c.provider.Complete(reqCtx, prompt)
		cancel()
		if err == nil {
			return strings.TrimSpace(response), nil
		}
		lastErr = err
	}
	return "", lastErr
}

// Invoke expands {name} placeholders in the template with vars, then
// completes the resulting prompt.
func (c *Client) Invoke(ctx context.Context, template string, vars map[string]string) (string, error) {
	return c.Complete(ctx, Expand(template, vars))
}

// Expand substitutes {name} placeholders in a prompt template.
func Expand(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
