package calc

import (
	"errors"

	"github.com/abacist/abacus/internal/token"
)

// Target selects which operand a label or unit edit applies to.
type Target int

const (
	// TargetCurrent edits the buffer.
	TargetCurrent Target = iota
	// TargetLastCommitted edits the most recent operand in the
	// committed sequence, found by a reverse scan.
	TargetLastCommitted
)

// ErrNotEditable reports an attempted edit of an intermediate result.
// Hosts surface it as a transient notice; engine state is unchanged.
var ErrNotEditable = errors.New("intermediate result is not editable")

// SetLabel names the targeted operand. A color outside the palette is
// ignored; ColorNone leaves the existing color in place.
func (c *Calculator) SetLabel(target Target, label string, color token.Color) error {
	if c.inError {
		return nil
	}
	if !color.Valid() {
		color = token.ColorNone
	}
	switch target {
	case TargetCurrent:
		if c.entry.intermediate {
			return ErrNotEditable
		}
		c.entry.label = label
		if color != token.ColorNone {
			c.entry.color = color
		}
	case TargetLastCommitted:
		if t := c.lastOperand(); t != nil {
			t.Label = label
			if color != token.ColorNone {
				t.Color = color
			}
			t.Refresh()
		}
	}
	return nil
}

// SetUnit sets the unit suffix of the targeted operand. An empty unit
// clears it.
func (c *Calculator) SetUnit(target Target, unit string) error {
	if c.inError {
		return nil
	}
	switch target {
	case TargetCurrent:
		if c.entry.intermediate {
			return ErrNotEditable
		}
		c.entry.unit = unit
	case TargetLastCommitted:
		if t := c.lastOperand(); t != nil {
			t.Unit = unit
			t.Refresh()
		}
	}
	return nil
}

// lastOperand returns the most recent operand in the committed
// sequence, or nil when none exists.
func (c *Calculator) lastOperand() *token.Token {
	for i := len(c.committed) - 1; i >= 0; i-- {
		if c.committed[i].Kind == token.Operand {
			return &c.committed[i]
		}
	}
	return nil
}
