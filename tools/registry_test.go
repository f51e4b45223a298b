package tools

import (
	"context"
	"strings"
	"testing"
)

type fakeTool struct {
	Config
	executed int
	result   *Result
}

func newFakeTool(name, description string, available bool, result *Result) *fakeTool {
	ret := new(fakeTool)
	ret.SetName(name)
	ret.SetDescription(description)
	ret.SetAvailable(available)
	ret.result = result
	return ret
}

func (t *fakeTool) Execute(_ context.Context, _ string, _ ...ExecOption) *Result {
	t.executed++
	return t.result
}

func TestRegistryOrderAndAvailability(t *testing.T) {
	registry := NewRegistry([]Tool{
		newFakeTool("alpha", "first tool", true, &Result{Success: true}),
		newFakeTool("broken", "unavailable tool", false, nil),
		newFakeTool("beta", "second tool", true, &Result{Success: true}),
	})
	if registry.Count() != 2 {
		t.Fatalf("Expect 2 registered tools, got %d", registry.Count())
	}
	names := registry.AvailableTools()
	if names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("Expect registration order preserved, got %v", names)
	}
	if registry.IsAvailable("broken") {
		t.Error("Expect unavailable tool to be excluded")
	}
	described := registry.DescribeAll()
	if !strings.Contains(described, "- alpha: first tool") {
		t.Errorf("Unexpected description block:\n%s", described)
	}
	if strings.Contains(described, "broken") {
		t.Error("Expect unavailable tool to be omitted from descriptions")
	}
}

func TestRegistryDuplicateIgnored(t *testing.T) {
	first := newFakeTool("alpha", "first", true, &Result{Success: true})
	second := newFakeTool("alpha", "shadowed", true, &Result{Success: true})
	registry := NewRegistry([]Tool{first, second})
	if registry.Count() != 1 {
		t.Fatalf("Expect duplicate to be ignored, got %d tools", registry.Count())
	}
	if registry.Descriptions()["alpha"] != "first" {
		t.Error("Expect first registration to win")
	}
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	registry := NewRegistry([]Tool{
		newFakeTool("alpha", "first tool", true, &Result{Success: true}),
	})
	result := registry.Execute(context.Background(), "missing", "query")
	if result.Success {
		t.Fatal("Expect failed result for unknown tool")
	}
	if result.ToolName != "missing" {
		t.Errorf("Expect result tagged with requested name, got %q", result.ToolName)
	}
	if !strings.Contains(result.Message, "alpha") {
		t.Errorf("Expect available tools listed in message, got %q", result.Message)
	}
}

func TestRegistryExecuteTagsToolName(t *testing.T) {
	tool := newFakeTool("alpha", "first tool", true, &Result{Success: true, Message: "ok"})
	registry := NewRegistry([]Tool{tool})
	result := registry.Execute(context.Background(), "alpha", "query")
	if !result.Success || result.ToolName != "alpha" {
		t.Errorf("Unexpected result: %+v", result)
	}
	if tool.executed != 1 {
		t.Errorf("Expect exactly one execution, got %d", tool.executed)
	}
}
