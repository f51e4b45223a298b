package calculator

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		expression string
		expect     float64
	}{
		{"2+2", 4},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"-3 + 5", 2},
		{"-(2 + 3)", -5},
		{"1.5 * 2", 3},
		{"2 * (3 + (4 - 1))", 12},
		{"100 - 10 - 10", 80},
	}
	for _, c := range cases {
		got, err := Evaluate(c.expression)
		if err != nil {
			t.Errorf("Evaluate(%q) unexpected error: %v", c.expression, err)
			continue
		}
		if math.Abs(got-c.expect) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, expect %v", c.expression, got, c.expect)
		}
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	if _, err := Evaluate("1/0"); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expect ErrDivisionByZero, but got %v", err)
	}
	if _, err := Evaluate("5 / (2 - 2)"); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expect ErrDivisionByZero, but got %v", err)
	}
}

func TestEvaluateMalformed(t *testing.T) {
	for _, expression := range []string{"", "2 +", "(2 + 3", "2..5 + 1", "* 3", "2 3", "()"} {
		if _, err := Evaluate(expression); !errors.Is(err, ErrMalformed) {
			t.Errorf("Evaluate(%q): expect ErrMalformed, but got %v", expression, err)
		}
	}
}

func TestExecuteSuccess(t *testing.T) {
	tool := New()
	result := tool.Execute(context.Background(), "2+2")
	if !result.Success {
		t.Fatalf("Expect success, but got failure: %s", result.Message)
	}
	if result.Value == nil || *result.Value != 4 {
		t.Errorf("Expect result 4, but got %v", result.Value)
	}
	if !strings.Contains(result.Message, "2+2 = 4") {
		t.Errorf("Unexpected message: %s", result.Message)
	}
}

func TestExecuteDivisionByZero(t *testing.T) {
	tool := New()
	result := tool.Execute(context.Background(), "1/0")
	if result.Success {
		t.Fatal("Expect failure for division by zero")
	}
	if result.Value != nil {
		t.Errorf("Expect nil result, but got %v", *result.Value)
	}
	if !strings.Contains(result.Message, "Division by zero") {
		t.Errorf("Unexpected message: %s", result.Message)
	}
}

func TestExecuteRejectsUnsafeInput(t *testing.T) {
	tool := New()
	for _, query := range []string{
		"2 + x",
		"import os",
		"__class__",
		"exec(1)",
		"2; 2",
		"2 ** 3",
	} {
		result := tool.Execute(context.Background(), query)
		if result.Success {
			t.Errorf("Expect failure for %q", query)
		}
		if result.Value != nil {
			t.Errorf("Expect nil result for %q, but got %v", query, *result.Value)
		}
	}
}

func TestExecuteIgnoresMaxResults(t *testing.T) {
	tool := New()
	result := tool.Execute(context.Background(), "3*3")
	if !result.Success || result.Value == nil || *result.Value != 9 {
		t.Errorf("Expect 9, but got %+v", result)
	}
	if len(result.Items) != 0 {
		t.Errorf("Calculator must not produce result items, got %d", len(result.Items))
	}
}
