// Package token defines the typed elements of a calculator expression:
// operands, arithmetic operators, and grouping marks.
package token

import (
	"github.com/google/uuid"

	"github.com/abacist/abacus/internal/format"
)

// Kind classifies a token.
type Kind int

const (
	Operand Kind = iota
	Operator
	Grouping
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Operand:
		return "OPERAND"
	case Operator:
		return "OPERATOR"
	case Grouping:
		return "GROUPING"
	}
	return "UNKNOWN"
}

// Op is an arithmetic operator.
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Unicode runes for each operator.
const (
	RuneAdd      = '+' // U+002B
	RuneSubtract = '−' // U+2212 minus sign
	RuneMultiply = '×' // U+00D7
	RuneDivide   = '÷' // U+00F7
)

// Rune returns the display rune for an operator.
func (o Op) Rune() rune {
	switch o {
	case OpAdd:
		return RuneAdd
	case OpSubtract:
		return RuneSubtract
	case OpMultiply:
		return RuneMultiply
	case OpDivide:
		return RuneDivide
	}
	return 0
}

// String returns the display string for an operator.
func (o Op) String() string {
	if r := o.Rune(); r != 0 {
		return string(r)
	}
	return ""
}

// Precedence returns the binding strength of an operator. Multiplicative
// operators bind tighter than additive ones; all are left-associative.
func (o Op) Precedence() int {
	switch o {
	case OpMultiply, OpDivide:
		return 2
	case OpAdd, OpSubtract:
		return 1
	}
	return 0
}

// OpFromRune returns the operator for a rune, accepting the ASCII
// aliases -, * and / alongside the display runes.
func OpFromRune(r rune) Op {
	switch r {
	case RuneAdd:
		return OpAdd
	case RuneSubtract, '-':
		return OpSubtract
	case RuneMultiply, '*', 'x':
		return OpMultiply
	case RuneDivide, '/':
		return OpDivide
	}
	return OpNone
}

// Paren is a grouping mark.
type Paren int

const (
	ParenNone Paren = iota
	ParenOpen
	ParenClose
)

// Rune returns the display rune for a grouping mark.
func (p Paren) Rune() rune {
	switch p {
	case ParenOpen:
		return '('
	case ParenClose:
		return ')'
	}
	return 0
}

// String returns the display string for a grouping mark.
func (p Paren) String() string {
	if r := p.Rune(); r != 0 {
		return string(r)
	}
	return ""
}

// Token is one element of an expression. Kind selects which fields are
// meaningful: operands carry Value plus display metadata, operators carry
// Op, grouping marks carry Paren.
type Token struct {
	ID    string
	Kind  Kind
	Value string // canonical numeric text, operands only
	Op    Op
	Paren Paren

	Label string
	Unit  string
	Color Color

	// Derived display strings, recomputed by Refresh after every
	// mutation of Value, Label or Unit.
	NumberLabel string
	NameLabel   string
}

// NewOperand creates an operand token with a fresh identity.
func NewOperand(value string) Token {
	t := Token{ID: uuid.NewString(), Kind: Operand, Value: value}
	t.Refresh()
	return t
}

// NewOperator creates an operator token.
func NewOperator(op Op) Token {
	return Token{ID: uuid.NewString(), Kind: Operator, Op: op}
}

// NewParen creates a grouping token.
func NewParen(p Paren) Token {
	return Token{ID: uuid.NewString(), Kind: Grouping, Paren: p}
}

// Refresh recomputes the derived display labels from Value, Label and
// Unit. The unit belongs to the number line only; the name line is the
// bare label.
func (t *Token) Refresh() {
	if t.Kind != Operand {
		t.NumberLabel = ""
		t.NameLabel = ""
		return
	}
	t.NumberLabel = format.NumberLabel(t.Value, t.Unit)
	t.NameLabel = t.Label
}

// Display returns the text a UI shows for the token.
func (t Token) Display() string {
	switch t.Kind {
	case Operand:
		return t.NumberLabel
	case Operator:
		return t.Op.String()
	case Grouping:
		return t.Paren.String()
	}
	return ""
}

// Clone returns a copy of the token under a fresh identity.
func (t Token) Clone() Token {
	c := t
	c.ID = uuid.NewString()
	return c
}

// CloneAll deep-copies a token sequence under fresh identities.
func CloneAll(tokens []Token) []Token {
	if tokens == nil {
		return nil
	}
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = t.Clone()
	}
	return out
}
