package agent

import (
	"github.com/rs/xid"

	"github.com/scibound/researchagent/tools"
)

// Result is the complete outcome of one research run.
type Result struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`
	// Question is the user question that started the run.
	Question string `json:"question"`
	// FinalResponse is the synthesized answer.
	FinalResponse string `json:"final_response"`
	// Steps is the full progress trace in emission order.
	Steps []Step `json:"step_messages"`
	// ToolResults holds every executed tool invocation, failures
	// included.
	ToolResults []*tools.Result `json:"tool_results"`
	// Metadata aggregates provenance from successful tool results.
	Metadata []tools.Provenance `json:"paper_metadata"`
	// Context collects result content snippets from successful tools.
	Context []string `json:"context"`
}

func newResult(question string, log *stepLog, toolResults []*tools.Result) *Result {
	return &Result{
		ID:          xid.New().String(),
		Question:    question,
		Steps:       log.snapshot(),
		ToolResults: toolResults,
		Metadata:    flattenMetadata(toolResults),
		Context:     flattenContext(toolResults),
	}
}

func flattenContext(toolResults []*tools.Result) []string {
	var context []string
	for _, result := range toolResults {
		if !result.Success {
			continue
		}
		for _, item := range result.Items {
			if item.Content != "" {
				context = append(context, item.Content)
			}
		}
	}
	return context
}

func flattenMetadata(toolResults []*tools.Result) []tools.Provenance {
	var metadata []tools.Provenance
	for _, result := range toolResults {
		if !result.Success {
			continue
		}
		metadata = append(metadata, result.Metadata...)
	}
	return metadata
}
