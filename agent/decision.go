package agent

import (
	"regexp"
	"strconv"
	"strings"
)

// PlanKind is the tool strategy chosen by the model.
type PlanKind int

const (
	// PlanNoTools answers from model knowledge alone.
	PlanNoTools PlanKind = iota
	// PlanSingleTool runs one tool before synthesis.
	PlanSingleTool
	// PlanMultiTool runs several tools in the model's order.
	PlanMultiTool
)

// PlanStep pairs a tool with its query. The query may be empty when the
// model named a tool without providing one; such steps are skipped.
type PlanStep struct {
	Tool  string
	Query string
}

// Plan is the parsed tool decision for one question.
type Plan struct {
	Kind      PlanKind
	Steps     []PlanStep
	Reasoning string
}

// Fallback reasonings when the model omits a REASONING line.
const (
	defaultMultiReasoning   = "Multi-tool strategy selected"
	defaultSingleReasoning  = "Single tool strategy selected"
	defaultNoToolsReasoning = "Can answer with existing knowledge"
)

var queryPattern = regexp.MustCompile(`^QUERY(\d+):`)

// ParseDecision interprets the model's plain text tool decision.
// Any response without a recognized marker is treated as a no-tools
// decision, so a malformed reply degrades to answering directly.
func ParseDecision(content string) *Plan {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	switch {
	case strings.Contains(content, "MULTI_TOOL_USE:"):
		return parseMultiTool(lines)
	case strings.Contains(content, "TOOL_USE:"):
		return parseSingleTool(lines)
	default:
		return parseNoTools(lines)
	}
}

func parseMultiTool(lines []string) *Plan {
	plan := &Plan{Kind: PlanMultiTool}
	var toolNames []string
	queries := make(map[int]string)
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "MULTI_TOOL_USE:"):
			for _, name := range strings.Split(markerValue(line), ",") {
				if name = strings.TrimSpace(name); name != "" {
					toolNames = append(toolNames, name)
				}
			}
		case strings.HasPrefix(line, "REASONING:"):
			plan.Reasoning = markerValue(line)
		default:
			if match := queryPattern.FindStringSubmatch(line); match != nil {
				if index, err := strconv.Atoi(match[1]); err == nil {
					queries[index] = markerValue(line)
				}
			}
		}
	}
	for i, name := range toolNames {
		// QUERY1 belongs to the first listed tool, QUERY2 to the
		// second, and so on.
		plan.Steps = append(plan.Steps, PlanStep{
			Tool:  name,
			Query: queries[i+1],
		})
	}
	if plan.Reasoning == "" {
		plan.Reasoning = defaultMultiReasoning
	}
	return plan
}

func parseSingleTool(lines []string) *Plan {
	plan := &Plan{Kind: PlanSingleTool}
	var step PlanStep
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "TOOL_USE:"):
			step.Tool = markerValue(line)
		case strings.HasPrefix(line, "QUERY:"):
			step.Query = markerValue(line)
		case strings.HasPrefix(line, "REASONING:"):
			plan.Reasoning = markerValue(line)
		}
	}
	plan.Steps = append(plan.Steps, step)
	if plan.Reasoning == "" {
		plan.Reasoning = defaultSingleReasoning
	}
	return plan
}

func parseNoTools(lines []string) *Plan {
	plan := &Plan{Kind: PlanNoTools}
	for _, line := range lines {
		if strings.HasPrefix(line, "REASONING:") {
			plan.Reasoning = markerValue(line)
		}
	}
	if plan.Reasoning == "" {
		plan.Reasoning = defaultNoToolsReasoning
	}
	return plan
}

func markerValue(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}
