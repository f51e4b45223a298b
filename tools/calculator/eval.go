package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Failure kinds reported by Evaluate. Division by zero is distinct from
// a malformed expression so callers can surface different messages.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrMalformed      = errors.New("invalid mathematical expression")
)

// Evaluate parses and evaluates an arithmetic expression limited to
// numbers, parentheses and the four basic operators. It is a dedicated
// recursive descent parser, deliberately not a general purpose
// expression evaluator.
//
// Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = number | "(" expr ")" | ("+" | "-") factor
func Evaluate(expression string) (float64, error) {
	p := &parser{input: expression}
	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrMalformed, p.input[p.pos], p.pos)
	}
	return value, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) parseExpr() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return value, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			value += rhs
		} else {
			value -= rhs
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	value, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return value, nil
		}
		p.pos++
		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			value *= rhs
			continue
		}
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		value /= rhs
	}
}

func (p *parser) parseFactor() (float64, error) {
	ch, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrMalformed)
	}
	switch {
	case ch == '+':
		p.pos++
		return p.parseFactor()
	case ch == '-':
		p.pos++
		value, err := p.parseFactor()
		return -value, err
	case ch == '(':
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		closing, ok := p.peek()
		if !ok || closing != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrMalformed)
		}
		p.pos++
		return value, nil
	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNumber() (float64, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	token := p.input[start:p.pos]
	if token == "" {
		return 0, fmt.Errorf("%w: expected a number at position %d", ErrMalformed, start)
	}
	if strings.Count(token, ".") > 1 {
		return 0, fmt.Errorf("%w: malformed number %q", ErrMalformed, token)
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed number %q", ErrMalformed, token)
	}
	return value, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
