package eval

import (
	"errors"
	"testing"

	"github.com/abacist/abacus/internal/token"
)

// seq builds a token sequence from shorthand strings: numbers become
// operands, operator runes and parens become their token kinds.
func seq(parts ...string) []token.Token {
	out := make([]token.Token, 0, len(parts))
	for _, p := range parts {
		switch p {
		case "(":
			out = append(out, token.NewParen(token.ParenOpen))
		case ")":
			out = append(out, token.NewParen(token.ParenClose))
		default:
			if len(p) == 1 {
				if op := token.OpFromRune(rune(p[0])); op != token.OpNone {
					out = append(out, token.NewOperator(op))
					continue
				}
			}
			out = append(out, token.NewOperand(p))
		}
	}
	return out
}

func TestEvaluatePrecedence(t *testing.T) {
	cases := []struct {
		parts []string
		want  float64
	}{
		{[]string{"2", "+", "3", "*", "4"}, 14},
		{[]string{"(", "2", "+", "3", ")", "*", "4"}, 20},
		{[]string{"8", "-", "3", "-", "2"}, 3},
		{[]string{"8", "/", "2", "/", "2"}, 2},
		{[]string{"2", "*", "3", "+", "4", "*", "5"}, 26},
		{[]string{"10", "/", "4"}, 2.5},
		{[]string{"2", "*", "(", "3", "+", "4", "*", "(", "1", "+", "1", ")", ")"}, 22},
		{[]string{"7"}, 7},
	}
	for _, c := range cases {
		got, err := Evaluate(seq(c.parts...))
		if err != nil {
			t.Errorf("Evaluate(%v): %v", c.parts, err)
			continue
		}
		if got != c.want {
			t.Errorf("Evaluate(%v) = %v, want %v", c.parts, got, c.want)
		}
	}
}

func TestEvaluateEmpty(t *testing.T) {
	got, err := Evaluate(nil)
	if err != nil {
		t.Fatalf("Evaluate(nil): %v", err)
	}
	if got != 0 {
		t.Errorf("empty sequence = %v, want 0", got)
	}

	// Grouping-only input reduces to an empty output queue.
	got, err = Evaluate(seq("(", ")"))
	if err != nil {
		t.Fatalf("Evaluate(()): %v", err)
	}
	if got != 0 {
		t.Errorf("grouping-only sequence = %v, want 0", got)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate(seq("1", "/", "0"))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}

	// Anywhere in the sequence, not just at the end.
	_, err = Evaluate(seq("4", "/", "0", "+", "2"))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero mid-expression, got %v", err)
	}
}

func TestEvaluateMalformed(t *testing.T) {
	_, err := Evaluate(seq("+"))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("lone operator: expected ErrMalformed, got %v", err)
	}
	_, err = Evaluate(seq("2", "+"))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("trailing operator: expected ErrMalformed, got %v", err)
	}
}

func TestEvaluateUnmatchedCloseNonFatal(t *testing.T) {
	got, err := Evaluate(seq("2", "+", "3", ")"))
	if err != nil {
		t.Fatalf("unmatched close: %v", err)
	}
	if got != 5 {
		t.Errorf("unmatched close = %v, want 5", got)
	}
}

func TestEvaluateUnclosedOpenNonFatal(t *testing.T) {
	got, err := Evaluate(seq("(", "2", "+", "3"))
	if err != nil {
		t.Fatalf("unclosed open: %v", err)
	}
	if got != 5 {
		t.Errorf("unclosed open = %v, want 5", got)
	}
}

func TestEvaluateGroupedOperandText(t *testing.T) {
	// Operand text restored from display strings keeps separators.
	got, err := Evaluate(seq("1,000", "+", "1"))
	if err != nil {
		t.Fatalf("grouped operand: %v", err)
	}
	if got != 1001 {
		t.Errorf("grouped operand = %v, want 1001", got)
	}
}

func TestEvaluatePure(t *testing.T) {
	tokens := seq("2", "+", "3", "*", "4")
	if _, err := Evaluate(tokens); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// A second pass over the same tokens must see them unchanged.
	got, err := Evaluate(tokens)
	if err != nil {
		t.Fatalf("second Evaluate: %v", err)
	}
	if got != 14 {
		t.Errorf("second Evaluate = %v, want 14", got)
	}
}
