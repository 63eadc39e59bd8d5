package calc

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/abacist/abacus/internal/eval"
	"github.com/abacist/abacus/internal/format"
	"github.com/abacist/abacus/internal/token"
)

// InputDigit handles a digit key. '.' is routed to InputDot; anything
// else outside 0-9 is ignored.
func (c *Calculator) InputDigit(d rune) {
	if c.inError {
		return
	}
	if d == '.' {
		c.InputDot()
		return
	}
	if d < '0' || d > '9' {
		return
	}
	if c.entry.resetScreen {
		c.resetEntry()
		c.entry.value = string(d)
		c.entry.resetScreen = false
		return
	}
	if c.entry.value == "0" {
		if d == '0' {
			return
		}
		// Leading zero is suppressed, not kept.
		c.entry.value = string(d)
		c.entry.label = ""
		return
	}
	c.entry.value += string(d)
	// Editing a named value un-names it; the unit survives.
	c.entry.label = ""
}

// InputDot appends the decimal point. A second dot is ignored.
func (c *Calculator) InputDot() {
	if c.inError {
		return
	}
	if c.entry.resetScreen {
		c.resetEntry()
		c.entry.value = "0."
		c.entry.resetScreen = false
		return
	}
	if strings.Contains(c.entry.value, ".") {
		return
	}
	c.entry.value += "."
	c.entry.label = ""
}

// InputParen handles a grouping key. An open parenthesis after a typed
// value commits an implicit multiplication first; a close parenthesis
// commits the buffer if it is mid-edit.
func (c *Calculator) InputParen(p token.Paren) {
	if c.inError || p == token.ParenNone {
		return
	}
	if p == token.ParenOpen {
		if !c.entry.resetScreen && c.entry.value != "" && c.entry.value != "0" {
			c.SetOperation(token.OpMultiply)
		}
		c.committed = append(c.committed, token.NewParen(token.ParenOpen))
		c.entry.resetScreen = true
		return
	}
	if c.midEdit() {
		c.commitEntry()
	}
	c.committed = append(c.committed, token.NewParen(token.ParenClose))
	c.entry.resetScreen = true
}

// SetOperation handles an operator key. A mid-edit buffer is committed
// first; a fresh-start buffer over an empty committed sequence (a prior
// result) is carried in as the first operand; an operator pressed right
// after another operator replaces it.
func (c *Calculator) SetOperation(op token.Op) {
	if c.inError || op == token.OpNone {
		return
	}
	switch {
	case c.midEdit():
		c.commitEntry()
	case len(c.committed) == 0:
		c.commitEntry()
		// The shown result is now part of an unfinished chain.
		c.entry.intermediate = true
	default:
		if last := &c.committed[len(c.committed)-1]; last.Kind == token.Operator {
			last.Op = op
			c.finishOperator()
			return
		}
	}
	c.committed = append(c.committed, token.NewOperator(op))
	c.finishOperator()
}

// finishOperator clears the buffer's naming fields and arms the screen
// reset. Naming applies only to the instance that was just committed.
func (c *Calculator) finishOperator() {
	c.entry.label = ""
	c.entry.unit = ""
	c.entry.color = token.ColorNone
	c.entry.resetScreen = true
}

// Calculate commits any mid-edit buffer, evaluates the committed
// sequence, records the result to history and shows it. An empty
// committed sequence is a no-op. Evaluation failure enters the error
// state; the failed attempt is never recorded.
func (c *Calculator) Calculate() {
	if c.inError {
		return
	}
	if c.midEdit() {
		c.commitEntry()
	}
	if len(c.committed) == 0 {
		return
	}
	v, err := eval.Evaluate(c.committed)
	if err != nil {
		c.committed = nil
		c.resetEntry()
		c.entry.value = ErrorMarker
		c.inError = true
		return
	}
	result := format.Canonical(v)
	c.pushHistory(Entry{
		ID:     uuid.NewString(),
		Tokens: token.CloneAll(c.committed),
		Result: result,
		At:     c.now(),
	})
	c.committed = nil
	c.resetEntry()
	c.entry.value = result
}

// Delete removes the last typed character. It is a no-op while the
// buffer awaits a new number.
func (c *Calculator) Delete() {
	if c.inError || c.entry.resetScreen {
		return
	}
	v := c.entry.value
	if len(v) <= 1 {
		c.entry.value = "0"
		return
	}
	v = v[:len(v)-1]
	if v == "-" {
		v = "0"
	}
	c.entry.value = v
	c.entry.label = ""
}

// ToggleSign negates the current value. Zero stays zero.
func (c *Calculator) ToggleSign() {
	if c.inError {
		return
	}
	v, err := strconv.ParseFloat(c.entry.value, 64)
	if err != nil || v == 0 {
		return
	}
	if strings.HasPrefix(c.entry.value, "-") {
		c.entry.value = c.entry.value[1:]
	} else {
		c.entry.value = "-" + c.entry.value
	}
}

// Percent divides the current value by 100 in place.
func (c *Calculator) Percent() {
	if c.inError {
		return
	}
	v, err := strconv.ParseFloat(c.entry.value, 64)
	if err != nil {
		return
	}
	c.entry.value = format.Canonical(v / 100)
}
