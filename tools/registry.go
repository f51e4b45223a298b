package tools

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Registry holds the set of usable tools for one agent process.
// It is populated once at startup and read only afterwards, so a single
// instance is safe to share across concurrent requests.
type Registry struct {
	logger *zap.Logger
	// names preserves registration order of available tools
	names []string
	tools map[string]Tool
}

type RegistryOption func(*Registry)

func RegistryWithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry builds a registry and registers the given tools.
// Tools whose availability probe failed are recorded as absent rather
// than causing registry failure.
func NewRegistry(toolList []Tool, opts ...RegistryOption) *Registry {
	ret := &Registry{
		tools: make(map[string]Tool, len(toolList)),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	for _, tool := range toolList {
		ret.register(tool)
	}
	return ret
}

func (r *Registry) register(tool Tool) {
	if tool == nil {
		return
	}
	name := tool.Name()
	if !tool.Available() {
		r.logger.Warn("tool not available", zap.String("tool", name))
		return
	}
	if _, exists := r.tools[name]; exists {
		r.logger.Warn("duplicate tool registration ignored", zap.String("tool", name))
		return
	}
	r.tools[name] = tool
	r.names = append(r.names, name)
	r.logger.Info("registered tool", zap.String("tool", name))
}

// AvailableTools returns the names of usable tools in registration order.
func (r *Registry) AvailableTools() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Descriptions returns a name to description mapping of usable tools.
func (r *Registry) Descriptions() map[string]string {
	ret := make(map[string]string, len(r.names))
	for _, name := range r.names {
		ret[name] = r.tools[name].Description()
	}
	return ret
}

// DescribeAll formats the available tools as "- name: description"
// lines in registration order, for inclusion in a model prompt.
func (r *Registry) DescribeAll() string {
	lines := make([]string, 0, len(r.names))
	for _, name := range r.names {
		lines = append(lines, fmt.Sprintf("- %s: %s", name, r.tools[name].Description()))
	}
	return strings.Join(lines, "\n")
}

// IsAvailable reports whether a usable tool with the given name exists.
func (r *Registry) IsAvailable(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// Count returns the number of usable tools.
func (r *Registry) Count() int {
	return len(r.names)
}

// Execute runs the named tool. An unknown or unavailable name yields a
// failed Result, never an error, so callers can treat all invocations
// uniformly. The returned Result is always tagged with the tool name.
func (r *Registry) Execute(ctx context.Context, name, query string, opts ...ExecOption) *Result {
	tool, ok := r.tools[name]
	if !ok {
		return Failure(name, fmt.Sprintf("Tool %q not available. Available tools: %s", name, strings.Join(r.names, ", ")))
	}
	result := tool.Execute(ctx, query, opts...)
	if result == nil {
		return Failure(name, fmt.Sprintf("Tool %q returned no result", name))
	}
	result.ToolName = name
	return result
}
