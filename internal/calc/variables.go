package calc

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/abacist/abacus/internal/format"
	"github.com/abacist/abacus/internal/token"
)

// Variable is a named, unit-tagged saved value. Label is the unique key.
type Variable struct {
	Label   string
	Value   string
	Unit    string
	Color   token.Color
	SavedAt time.Time
}

var (
	// ErrEmptyLabel reports a save without a label.
	ErrEmptyLabel = errors.New("variable label is empty")
	// ErrBadValue reports a save with non-numeric value text.
	ErrBadValue = errors.New("variable value is not numeric")
)

// SaveVariable upserts a variable keyed on label. An existing label is
// overwritten in place; the list stays sorted newest-saved-first.
func (c *Calculator) SaveVariable(label, value, unit string, color token.Color) (Variable, error) {
	if label == "" {
		return Variable{}, ErrEmptyLabel
	}
	value = format.Ungroup(value)
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return Variable{}, ErrBadValue
	}
	if !color.Valid() {
		color = token.ColorNone
	}
	v := Variable{Label: label, Value: value, Unit: unit, Color: color, SavedAt: c.now()}
	replaced := false
	for i := range c.vars {
		if c.vars[i].Label == label {
			c.vars[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		c.vars = append(c.vars, v)
	}
	c.sortVars()
	return v, nil
}

// DeleteVariable removes a variable by label. Unknown labels are a no-op.
func (c *Calculator) DeleteVariable(label string) {
	for i := range c.vars {
		if c.vars[i].Label == label {
			c.vars = append(c.vars[:i], c.vars[i+1:]...)
			return
		}
	}
}

// Variables returns the saved variables, newest first.
func (c *Calculator) Variables() []Variable {
	out := make([]Variable, len(c.vars))
	copy(out, c.vars)
	return out
}

// VariableByLabel looks up a saved variable.
func (c *Calculator) VariableByLabel(label string) (Variable, bool) {
	for _, v := range c.vars {
		if v.Label == label {
			return v, true
		}
	}
	return Variable{}, false
}

// InputVariable enters a saved variable as the current value. It runs
// through the digit-entry reset semantics first, then overwrites the
// buffer fields, leaving the buffer editable and chainable.
func (c *Calculator) InputVariable(v Variable) {
	if c.inError {
		return
	}
	if c.entry.resetScreen {
		c.resetEntry()
		c.entry.resetScreen = false
	}
	c.entry.value = format.Ungroup(v.Value)
	c.entry.label = v.Label
	c.entry.unit = v.Unit
	c.entry.color = v.Color
	c.entry.intermediate = false
}

// RestoreVariables replaces the in-memory variables with ones loaded
// from a persistence collaborator.
func (c *Calculator) RestoreVariables(vars []Variable) {
	c.vars = make([]Variable, len(vars))
	copy(c.vars, vars)
	c.sortVars()
}

func (c *Calculator) sortVars() {
	sort.SliceStable(c.vars, func(i, j int) bool {
		return c.vars[i].SavedAt.After(c.vars[j].SavedAt)
	})
}
