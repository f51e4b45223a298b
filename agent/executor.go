package agent

import (
	"context"
	"fmt"

	"github.com/scibound/researchagent/tools"
)

// executePlan runs the plan's steps strictly in order. Multi-tool steps
// without a query or naming an absent tool are skipped silently; a
// failing tool is recorded and the remaining steps still run.
func (a *Agent) executePlan(ctx context.Context, plan *Plan, log *stepLog) []*tools.Result {
	var toolResults []*tools.Result
	for _, step := range plan.Steps {
		if log.aborted {
			break
		}
		if step.Tool == "" || step.Query == "" {
			continue
		}
		if plan.Kind == PlanMultiTool && !a.registry.IsAvailable(step.Tool) {
			continue
		}
		toolResults = append(toolResults, a.executeStep(ctx, step, log))
	}
	return toolResults
}

func (a *Agent) executeStep(ctx context.Context, step PlanStep, log *stepLog) *tools.Result {
	log.add(StatusSearching, fmt.Sprintf("Executing %s: %s", step.Tool, step.Query))
	var opts []tools.ExecOption
	if a.maxResults > 0 {
		opts = append(opts, tools.WithMaxResults(a.maxResults))
	}
	result := a.registry.Execute(ctx, step.Tool, step.Query, opts...)
	switch {
	case !result.Success:
		log.add(StatusError, fmt.Sprintf("%s failed: %s", step.Tool, result.Message))
	case result.Value != nil:
		log.add(StatusFound, "Calculation completed: "+formatNumber(*result.Value))
	default:
		log.add(StatusFound, fmt.Sprintf("Found %d results from %s", len(result.Items), step.Tool))
	}
	return result
}
