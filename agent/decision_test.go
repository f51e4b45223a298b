package agent

import (
	"testing"
)

func TestParseDecisionSingleTool(t *testing.T) {
	content := `TOOL_USE: arxiv_search
QUERY: attention mechanisms
REASONING: academic question needs papers`
	plan := ParseDecision(content)
	if plan.Kind != PlanSingleTool {
		t.Fatalf("Expect single tool plan, got %v", plan.Kind)
	}
	if len(plan.Steps) != 1 {
		t.Fatalf("Expect 1 step, got %d", len(plan.Steps))
	}
	if plan.Steps[0].Tool != "arxiv_search" || plan.Steps[0].Query != "attention mechanisms" {
		t.Errorf("Unexpected step: %+v", plan.Steps[0])
	}
	if plan.Reasoning != "academic question needs papers" {
		t.Errorf("Unexpected reasoning: %q", plan.Reasoning)
	}
}

func TestParseDecisionMultiTool(t *testing.T) {
	content := `MULTI_TOOL_USE: brave_search,webscraper
QUERY1: best science channels
QUERY2: https://example.com/list
REASONING: current topic needs web search plus scraping`
	plan := ParseDecision(content)
	if plan.Kind != PlanMultiTool {
		t.Fatalf("Expect multi tool plan, got %v", plan.Kind)
	}
	if len(plan.Steps) != 2 {
		t.Fatalf("Expect 2 steps, got %d", len(plan.Steps))
	}
	if plan.Steps[0].Tool != "brave_search" || plan.Steps[0].Query != "best science channels" {
		t.Errorf("Unexpected first step: %+v", plan.Steps[0])
	}
	if plan.Steps[1].Tool != "webscraper" || plan.Steps[1].Query != "https://example.com/list" {
		t.Errorf("Unexpected second step: %+v", plan.Steps[1])
	}
}

func TestParseDecisionThreeTools(t *testing.T) {
	content := `MULTI_TOOL_USE: arxiv_search,brave_search,webscraper
QUERY1: transformer surveys
QUERY2: transformer applications 2026
QUERY3: https://example.com/post
REASONING: broad coverage`
	plan := ParseDecision(content)
	if len(plan.Steps) != 3 {
		t.Fatalf("Expect 3 steps, got %d", len(plan.Steps))
	}
	if plan.Steps[2].Tool != "webscraper" || plan.Steps[2].Query != "https://example.com/post" {
		t.Errorf("Unexpected third step: %+v", plan.Steps[2])
	}
}

func TestParseDecisionMissingQueryLeavesStepEmpty(t *testing.T) {
	content := `MULTI_TOOL_USE: brave_search,webscraper
QUERY1: best science channels
REASONING: follow-up URLs unknown yet`
	plan := ParseDecision(content)
	if len(plan.Steps) != 2 {
		t.Fatalf("Expect 2 steps, got %d", len(plan.Steps))
	}
	if plan.Steps[1].Query != "" {
		t.Errorf("Expect empty query for unpaired tool, got %q", plan.Steps[1].Query)
	}
}

func TestParseDecisionNoTools(t *testing.T) {
	content := `NO_TOOLS_NEEDED: I can answer with existing knowledge
REASONING: general knowledge question`
	plan := ParseDecision(content)
	if plan.Kind != PlanNoTools {
		t.Fatalf("Expect no tools plan, got %v", plan.Kind)
	}
	if plan.Reasoning != "general knowledge question" {
		t.Errorf("Unexpected reasoning: %q", plan.Reasoning)
	}
}

func TestParseDecisionMalformedFallsBackToNoTools(t *testing.T) {
	plan := ParseDecision("I think you should probably search the web.")
	if plan.Kind != PlanNoTools {
		t.Fatalf("Expect fallback to no tools, got %v", plan.Kind)
	}
	if plan.Reasoning != "Can answer with existing knowledge" {
		t.Errorf("Expect default reasoning, got %q", plan.Reasoning)
	}
}

func TestParseDecisionDefaultReasonings(t *testing.T) {
	single := ParseDecision("TOOL_USE: calculator\nQUERY: 2+2")
	if single.Reasoning != "Single tool strategy selected" {
		t.Errorf("Unexpected single default: %q", single.Reasoning)
	}
	multi := ParseDecision("MULTI_TOOL_USE: brave_search,webscraper\nQUERY1: x\nQUERY2: y")
	if multi.Reasoning != "Multi-tool strategy selected" {
		t.Errorf("Unexpected multi default: %q", multi.Reasoning)
	}
}
