// Package calc implements the calculator engine: an edit buffer holding
// the value currently being typed, the committed token sequence typed
// before it, and the history and variable collections. One method per
// user action; the engine is owned by a single interactive session and
// performs no locking.
package calc

import (
	"time"

	"github.com/google/uuid"

	"github.com/abacist/abacus/internal/format"
	"github.com/abacist/abacus/internal/token"
)

// ErrorMarker is displayed after an evaluation failure until Clear.
const ErrorMarker = "Error"

// DefaultHistoryLimit bounds the calculation history.
const DefaultHistoryLimit = 50

// entry is the edit buffer: the in-progress value not yet committed to
// the expression.
type entry struct {
	id    string
	value string
	label string
	unit  string
	color token.Color

	// resetScreen means the next digit starts a new number instead of
	// appending to the shown one.
	resetScreen bool
	// intermediate marks a just-computed, non-editable value carried
	// into an unfinished chain.
	intermediate bool
}

// Calculator owns all mutable engine state for one session.
type Calculator struct {
	entry     entry
	committed []token.Token
	history   []Entry
	vars      []Variable

	historyLimit int
	inError      bool
	now          func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithHistoryLimit bounds the calculation history to n entries.
func WithHistoryLimit(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.historyLimit = n
		}
	}
}

// WithClock sets the time source used for variable timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Calculator in its initial state: display "0", empty
// committed sequence, empty history and variables.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		historyLimit: DefaultHistoryLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resetEntry()
	return c
}

// resetEntry returns the buffer to a fresh "0" under a new identity.
func (c *Calculator) resetEntry() {
	c.entry = entry{id: uuid.NewString(), value: "0", resetScreen: true}
}

// midEdit reports whether the buffer is being typed into, as opposed to
// awaiting the first digit of a new number.
func (c *Calculator) midEdit() bool {
	return !c.entry.resetScreen && c.entry.value != ""
}

// commitEntry appends the buffer to the committed sequence as an operand
// token, keeping the buffer's identity on the committed instance.
func (c *Calculator) commitEntry() {
	t := token.Token{
		ID:    c.entry.id,
		Kind:  token.Operand,
		Value: c.entry.value,
		Label: c.entry.label,
		Unit:  c.entry.unit,
		Color: c.entry.color,
	}
	t.Refresh()
	c.committed = append(c.committed, t)
	// The committed instance owns the name now; the buffer keeps only
	// its value for display.
	c.entry.id = uuid.NewString()
}

// Clear returns the engine to its initial state. History and variables
// are untouched.
func (c *Calculator) Clear() {
	c.committed = nil
	c.inError = false
	c.resetEntry()
}

// InError reports whether the engine is in the error state. Only Clear
// leaves it.
func (c *Calculator) InError() bool {
	return c.inError
}

// Display returns the formatted text for the current value.
func (c *Calculator) Display() string {
	if c.inError {
		return ErrorMarker
	}
	return format.Group(c.entry.value)
}

// Value returns the raw canonical text of the current value.
func (c *Calculator) Value() string {
	return c.entry.value
}

// Unit returns the unit of the current value.
func (c *Calculator) Unit() string {
	return c.entry.unit
}

// Label returns the label of the current value.
func (c *Calculator) Label() string {
	return c.entry.label
}

// Color returns the color of the current value.
func (c *Calculator) Color() token.Color {
	return c.entry.color
}

// IsIntermediateResult reports whether the current value is a computed,
// non-editable intermediate.
func (c *Calculator) IsIntermediateResult() bool {
	return c.entry.intermediate
}

// Committed returns a copy of the committed token sequence.
func (c *Calculator) Committed() []token.Token {
	out := make([]token.Token, len(c.committed))
	copy(out, c.committed)
	return out
}

// DisplayTokens returns the committed sequence followed by the current
// entry as one ordered slice for a host's display pass. The trailing
// entry token keeps a stable identity across edits of the same number.
func (c *Calculator) DisplayTokens() []token.Token {
	out := make([]token.Token, 0, len(c.committed)+1)
	out = append(out, c.committed...)
	cur := token.Token{
		ID:    c.entry.id,
		Kind:  token.Operand,
		Value: c.entry.value,
		Label: c.entry.label,
		Unit:  c.entry.unit,
		Color: c.entry.color,
	}
	if c.inError {
		cur.Value = ErrorMarker
		cur.NumberLabel = ErrorMarker
		return append(out, cur)
	}
	cur.Refresh()
	return append(out, cur)
}
