package agent

import (
	"go.uber.org/zap"
)

// StepStatus classifies a progress step for display.
type StepStatus string

const (
	StatusChecking     StepStatus = "checking"
	StatusSearching    StepStatus = "searching"
	StatusFound        StepStatus = "found"
	StatusError        StepStatus = "error"
	StatusSynthesizing StepStatus = "synthesizing"
	StatusCompleted    StepStatus = "completed"
)

// Step is one progress update emitted during a research run.
type Step struct {
	Status  StepStatus `json:"status"`
	Message string     `json:"message"`
}

// stepLog accumulates progress steps for a single request. When emit is
// set, every step is also pushed to it; an emit returning false marks
// the log aborted and stops the run at the next stage boundary.
type stepLog struct {
	logger  *zap.Logger
	steps   []Step
	emit    func(Step) bool
	aborted bool
}

func newStepLog(logger *zap.Logger, emit func(Step) bool) *stepLog {
	return &stepLog{
		logger: logger,
		emit:   emit,
	}
}

func (l *stepLog) add(status StepStatus, message string) {
	if l.aborted {
		return
	}
	step := Step{Status: status, Message: message}
	l.steps = append(l.steps, step)
	l.logger.Info(message, zap.String("status", string(status)))
	if l.emit != nil && !l.emit(step) {
		l.aborted = true
	}
}

func (l *stepLog) snapshot() []Step {
	steps := make([]Step, len(l.steps))
	copy(steps, l.steps)
	return steps
}
