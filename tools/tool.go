package tools

import (
	"context"
)

// Tool is the uniform contract shared by every research capability.
// Implementations never return a Go error from Execute: failures are
// reported inside the Result so callers can treat all invocations the
// same way.
type Tool interface {
	// Name returns the registry name of the tool, e.g. "arxiv_search".
	Name() string
	// Description returns a human readable description shown to the
	// decision model and to users.
	Description() string
	// Available reports whether the tool's credentials and dependencies
	// were satisfied at construction time.
	Available() bool
	// Execute runs the tool against a free text query.
	Execute(ctx context.Context, query string, opts ...ExecOption) *Result
}

// ExecOptions carries per-invocation parameters.
type ExecOptions struct {
	// MaxResults caps the number of result items for search style tools.
	MaxResults int
}

type ExecOption func(*ExecOptions)

func WithMaxResults(n int) ExecOption {
	return func(o *ExecOptions) {
		o.MaxResults = n
	}
}

// NewExecOptions applies opts over the given defaults.
func NewExecOptions(defaultMaxResults int, opts ...ExecOption) *ExecOptions {
	ret := &ExecOptions{MaxResults: defaultMaxResults}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.MaxResults <= 0 {
		ret.MaxResults = defaultMaxResults
	}
	return ret
}
