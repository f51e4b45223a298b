package agent

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/scibound/researchagent/components/llm"
	"github.com/scibound/researchagent/tools"
)

// Agent orchestrates tool selection, execution, and synthesis for one
// research question at a time. It holds no per request state, so a
// single instance serves concurrent requests.
type Agent struct {
	llm        *llm.Client
	registry   *tools.Registry
	logger     *zap.Logger
	maxResults int
}

type Option func(*Agent)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

// WithMaxResults caps search style tool results per invocation.
func WithMaxResults(maxResults int) Option {
	return func(a *Agent) {
		a.maxResults = maxResults
	}
}

// New builds an agent. A missing model client or registry is a fatal
// configuration error.
func New(client *llm.Client, registry *tools.Registry, opts ...Option) (*Agent, error) {
	if client == nil {
		return nil, errors.New("agent requires a model client")
	}
	if registry == nil {
		return nil, errors.New("agent requires a tool registry")
	}
	ret := &Agent{
		llm:      client,
		registry: registry,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret, nil
}

// AvailableTools returns the usable tool names in registration order.
func (a *Agent) AvailableTools() []string {
	return a.registry.AvailableTools()
}

// Research answers one question end to end. On a model failure the
// returned Result still carries the progress trace collected so far,
// alongside the error.
func (a *Agent) Research(ctx context.Context, question string) (*Result, error) {
	return a.run(ctx, question, nil)
}

// EventType discriminates streamed events.
type EventType string

const (
	// EventStep carries one progress update.
	EventStep EventType = "step"
	// EventFinal carries the completed result and is always last.
	EventFinal EventType = "final"
)

// Event is one element of a research stream.
type Event struct {
	Type   EventType
	Step   *Step
	Result *Result
	Err    error
}

// ResearchStream runs the same pipeline as Research but yields each
// progress step as it happens, ending with a final event. Stopping the
// iteration early aborts the remaining pipeline stages.
func (a *Agent) ResearchStream(ctx context.Context, question string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		emit := func(step Step) bool {
			s := step
			return yield(Event{Type: EventStep, Step: &s})
		}
		result, err := a.run(ctx, question, emit)
		if result == nil && err == nil {
			// Consumer stopped the stream.
			return
		}
		yield(Event{Type: EventFinal, Result: result, Err: err})
	}
}

func (a *Agent) run(ctx context.Context, question string, emit func(Step) bool) (*Result, error) {
	log := newStepLog(a.logger, emit)
	log.add(StatusChecking, "Starting intelligent research process...")
	if log.aborted {
		return nil, nil
	}

	plan, err := a.decide(ctx, question, log)
	if err != nil {
		result := newResult(question, log, nil)
		return result, fmt.Errorf("tool decision: %w", err)
	}
	if log.aborted {
		return nil, nil
	}

	var toolResults []*tools.Result
	if plan.Kind == PlanNoTools {
		log.add(StatusCompleted, "Using existing knowledge: "+plan.Reasoning)
	} else {
		log.add(StatusChecking, "Strategy: "+plan.Reasoning)
		toolResults = a.executePlan(ctx, plan, log)
	}
	if log.aborted {
		return nil, nil
	}

	response, err := a.synthesize(ctx, question, toolResults, log)
	if err != nil {
		result := newResult(question, log, toolResults)
		return result, fmt.Errorf("synthesis: %w", err)
	}
	if log.aborted {
		return nil, nil
	}

	result := newResult(question, log, toolResults)
	result.FinalResponse = response
	return result, nil
}

func (a *Agent) decide(ctx context.Context, question string, log *stepLog) (*Plan, error) {
	log.add(StatusSearching, "Analyzing question and determining tool strategy...")
	response, err := a.llm.Invoke(ctx, decisionPrompt, map[string]string{
		"user_question":   question,
		"available_tools": a.registry.DescribeAll(),
	})
	if err != nil {
		log.add(StatusError, "Tool decision failed: "+err.Error())
		return nil, err
	}
	return ParseDecision(response), nil
}

func (a *Agent) synthesize(ctx context.Context, question string, toolResults []*tools.Result, log *stepLog) (string, error) {
	log.add(StatusSynthesizing, "Synthesizing comprehensive response from all sources...")
	if log.aborted {
		return "", nil
	}
	response, err := a.llm.Invoke(ctx, synthesisPrompt, map[string]string{
		"user_question": question,
		"tool_results":  formatToolResults(toolResults),
	})
	if err != nil {
		log.add(StatusError, "Synthesis failed: "+err.Error())
		return "", err
	}
	log.add(StatusCompleted, "Response synthesized successfully!")
	return response, nil
}
