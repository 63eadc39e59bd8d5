// Package eval evaluates an ordered token sequence with standard infix
// precedence. It reorders tokens to Reverse-Polish order with the
// shunting-yard algorithm and then folds them over a value stack. The
// package is pure: no state survives a call and nothing is mutated.
package eval

import (
	"errors"
	"math"
	"strconv"

	"github.com/abacist/abacus/internal/format"
	"github.com/abacist/abacus/internal/token"
)

var (
	// ErrDivisionByZero reports a ÷ with a zero right operand.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrMalformed reports an operand/operator mismatch discovered
	// during RPN evaluation.
	ErrMalformed = errors.New("malformed expression")
)

// Evaluate computes the numeric value of a token sequence. An empty
// sequence (or one that reduces to an empty output queue) evaluates
// to 0 by definition.
func Evaluate(tokens []token.Token) (float64, error) {
	return evalRPN(toRPN(tokens))
}

// toRPN reorders infix tokens to postfix. Grouping marks never reach
// the output queue: a close pops operators until its open, an unmatched
// close simply drains the stack, and opens left behind at the end are
// discarded.
func toRPN(tokens []token.Token) []token.Token {
	var out, stack []token.Token
	for _, t := range tokens {
		switch t.Kind {
		case token.Operand:
			out = append(out, t)
		case token.Operator:
			// Left-associative: equal precedence pops.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != token.Operator || top.Op.Precedence() < t.Op.Precedence() {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		case token.Grouping:
			if t.Paren == token.ParenOpen {
				stack = append(stack, t)
				continue
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == token.Grouping {
					break
				}
				out = append(out, top)
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == token.Operator {
			out = append(out, top)
		}
	}
	return out
}

// evalRPN folds a postfix queue over a value stack.
func evalRPN(rpn []token.Token) (float64, error) {
	if len(rpn) == 0 {
		return 0, nil
	}
	var stack []float64
	for _, t := range rpn {
		if t.Kind == token.Operand {
			v, err := strconv.ParseFloat(format.Ungroup(t.Value), 64)
			if err != nil {
				return 0, ErrMalformed
			}
			stack = append(stack, v)
			continue
		}
		if len(stack) < 2 {
			return 0, ErrMalformed
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		v, err := apply(t.Op, left, right)
		if err != nil {
			return 0, err
		}
		stack = append(stack, v)
	}
	return stack[len(stack)-1], nil
}

func apply(op token.Op, left, right float64) (float64, error) {
	var v float64
	switch op {
	case token.OpAdd:
		v = left + right
	case token.OpSubtract:
		v = left - right
	case token.OpMultiply:
		v = left * right
	case token.OpDivide:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		v = left / right
	default:
		return 0, ErrMalformed
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMalformed
	}
	return v, nil
}
