package abacus

import (
	"time"

	"github.com/abacist/abacus/internal/calc"
	"github.com/abacist/abacus/internal/store"
	"github.com/abacist/abacus/internal/token"
)

// Option configures a Session.
type Option func(*Session)

// WithSQLiteStore configures SQLite persistence at the given path.
func WithSQLiteStore(path string) Option {
	return func(s *Session) {
		st, err := store.NewSQLite(path)
		if err == nil {
			s.store = st
		}
	}
}

// WithMemoryStore configures an in-memory store (for testing).
func WithMemoryStore() Option {
	return func(s *Session) {
		s.store = store.NewMemory()
	}
}

// WithStore configures a custom store.
func WithStore(st Store) Option {
	return func(s *Session) {
		s.store = st
	}
}

// WithHistoryLimit bounds the calculation history.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		s.historyLimit = n
	}
}

// WithClock sets the time source for variable timestamps (for testing).
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.calcOpts = append(s.calcOpts, calc.WithClock(now))
	}
}

// Store is the interface for custom persistence backends.
type Store = store.Store

// Variable is a named saved value.
type Variable = calc.Variable

// Entry is one history record.
type Entry = calc.Entry

// Target selects which operand a label or unit edit applies to.
type Target = calc.Target

// Edit targets.
const (
	TargetCurrent       = calc.TargetCurrent
	TargetLastCommitted = calc.TargetLastCommitted
)

// Token is one display element of an expression.
type Token = token.Token

// Op is an arithmetic operator.
type Op = token.Op

// Operators.
const (
	OpNone     = token.OpNone
	OpAdd      = token.OpAdd
	OpSubtract = token.OpSubtract
	OpMultiply = token.OpMultiply
	OpDivide   = token.OpDivide
)

// Paren is a grouping mark.
type Paren = token.Paren

// Grouping marks.
const (
	ParenOpen  = token.ParenOpen
	ParenClose = token.ParenClose
)

// Color is a palette entry for named values.
type Color = token.Color

// ErrNotEditable reports an attempted edit of an intermediate result.
var ErrNotEditable = calc.ErrNotEditable

// ParseColor returns the color for a palette name.
func ParseColor(s string) (Color, bool) {
	return token.ParseColor(s)
}

// OpFromRune returns the operator for a key rune, accepting ASCII
// aliases alongside the display runes.
func OpFromRune(r rune) Op {
	return token.OpFromRune(r)
}
