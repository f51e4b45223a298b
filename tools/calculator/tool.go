package calculator

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/scibound/researchagent/tools"
)

const (
	// ToolName is the registry name for the calculator.
	ToolName = "calculator"

	defaultDescription = "Perform basic mathematical calculations including arithmetic operations."
)

// allowedPattern accepts digits, the four basic operators, parentheses,
// decimal points and whitespace. Anything else is rejected before the
// expression reaches the parser.
var allowedPattern = regexp.MustCompile(`^[0-9+\-*/.() \t]+$`)

// blacklist rejects tokens associated with code injection attempts.
// The allowlist already excludes letters, but the check is kept as an
// independent guard on the raw input.
var blacklist = []string{
	"__", "import", "exec", "eval", "open", "file",
	"input", "raw_input", "compile", "globals", "locals",
}

// Tool evaluates arithmetic expressions with a restricted grammar.
type Tool struct {
	tools.Config
}

var _ tools.Tool = (*Tool)(nil)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Name() == "" {
		ret.SetName(ToolName)
	}
	if ret.Description() == "" {
		ret.SetDescription(defaultDescription)
	}
	// No credentials or external dependencies required.
	ret.SetAvailable(true)
	return ret
}

// Execute evaluates the expression in query. MaxResults is ignored.
func (t *Tool) Execute(ctx context.Context, query string, _ ...tools.ExecOption) *tools.Result {
	expression := strings.TrimSpace(query)
	if !isSafeExpression(expression) {
		return tools.Failure(t.Name(),
			"Invalid characters in expression. Only numbers and basic operators (+, -, *, /, parentheses) are allowed.")
	}
	value, err := Evaluate(expression)
	if err != nil {
		switch {
		case errors.Is(err, ErrDivisionByZero):
			return tools.Failure(t.Name(), "Error: Division by zero")
		default:
			return tools.Failure(t.Name(), fmt.Sprintf("Error: %v", err))
		}
	}
	return &tools.Result{
		ToolName: t.Name(),
		Success:  true,
		Message:  fmt.Sprintf("Calculation completed: %s = %s", expression, FormatValue(value)),
		Value:    &value,
	}
}

// FormatValue renders a calculation result without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isSafeExpression(expression string) bool {
	if expression == "" || !allowedPattern.MatchString(expression) {
		return false
	}
	lower := strings.ToLower(expression)
	for _, token := range blacklist {
		if strings.Contains(lower, token) {
			return false
		}
	}
	return true
}
