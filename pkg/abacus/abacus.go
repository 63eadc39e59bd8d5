// Package abacus provides the public API for the calculator engine: a
// Session owning one engine instance, optionally synced with a
// persistence store.
package abacus

import (
	"github.com/abacist/abacus/internal/calc"
	"github.com/abacist/abacus/internal/store"
	"github.com/abacist/abacus/internal/token"
)

// Session is one interactive calculator session. It is not safe for
// concurrent use; embedders give each user their own Session.
type Session struct {
	calc         *calc.Calculator
	store        store.Store
	historyLimit int
	calcOpts     []calc.Option
}

// New creates a Session with the given options. When a store is
// configured, saved variables and recent history are loaded from it.
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	calcOpts := s.calcOpts
	if s.historyLimit > 0 {
		calcOpts = append(calcOpts, calc.WithHistoryLimit(s.historyLimit))
	}
	s.calc = calc.New(calcOpts...)

	if s.store != nil {
		if vars, err := s.store.Variables(); err == nil {
			s.calc.RestoreVariables(vars)
		}
		if entries, err := s.store.History(s.calc.HistoryLimit()); err == nil {
			s.calc.RestoreHistory(entries)
		}
	}
	return s
}

// Close releases the underlying store, if any.
func (s *Session) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// InputDigit enters a digit or dot character.
func (s *Session) InputDigit(d rune) { s.calc.InputDigit(d) }

// InputDot enters the decimal point.
func (s *Session) InputDot() { s.calc.InputDot() }

// InputParen enters a grouping mark.
func (s *Session) InputParen(p token.Paren) { s.calc.InputParen(p) }

// SetOperation enters an arithmetic operator.
func (s *Session) SetOperation(op token.Op) { s.calc.SetOperation(op) }

// Calculate evaluates the current expression. A successful result is
// written through to the store.
func (s *Session) Calculate() {
	head := s.headID()
	s.calc.Calculate()
	if s.store == nil || s.calc.InError() {
		return
	}
	if hist := s.calc.History(); len(hist) > 0 && hist[0].ID != head {
		s.store.AppendHistory(hist[0])
	}
}

func (s *Session) headID() string {
	if hist := s.calc.History(); len(hist) > 0 {
		return hist[0].ID
	}
	return ""
}

// Clear resets the expression state.
func (s *Session) Clear() { s.calc.Clear() }

// Delete removes the last typed character.
func (s *Session) Delete() { s.calc.Delete() }

// ToggleSign negates the current value.
func (s *Session) ToggleSign() { s.calc.ToggleSign() }

// Percent divides the current value by 100.
func (s *Session) Percent() { s.calc.Percent() }

// SetLabel names the targeted operand.
func (s *Session) SetLabel(target calc.Target, label string, color token.Color) error {
	return s.calc.SetLabel(target, label, color)
}

// SetUnit sets the unit of the targeted operand.
func (s *Session) SetUnit(target calc.Target, unit string) error {
	return s.calc.SetUnit(target, unit)
}

// LoadFromHistory restores a past calculation as an editable expression.
func (s *Session) LoadFromHistory(index int) error {
	return s.calc.LoadFromHistory(index)
}

// SaveVariable upserts a named value and writes it through to the store.
func (s *Session) SaveVariable(label, value, unit string, color token.Color) (calc.Variable, error) {
	v, err := s.calc.SaveVariable(label, value, unit, color)
	if err != nil {
		return v, err
	}
	if s.store != nil {
		if err := s.store.SaveVariable(v); err != nil {
			return v, err
		}
	}
	return v, nil
}

// SaveCurrent saves the value on display under the given label, keeping
// its unit.
func (s *Session) SaveCurrent(label string, color token.Color) (calc.Variable, error) {
	return s.SaveVariable(label, s.calc.Value(), s.calc.Unit(), color)
}

// DeleteVariable removes a named value here and in the store.
func (s *Session) DeleteVariable(label string) error {
	s.calc.DeleteVariable(label)
	if s.store != nil {
		return s.store.DeleteVariable(label)
	}
	return nil
}

// InputVariable enters a saved variable as the current value.
func (s *Session) InputVariable(v calc.Variable) { s.calc.InputVariable(v) }

// Display returns the formatted current value.
func (s *Session) Display() string { return s.calc.Display() }

// Value returns the raw canonical current value.
func (s *Session) Value() string { return s.calc.Value() }

// Unit returns the unit of the current value.
func (s *Session) Unit() string { return s.calc.Unit() }

// IsIntermediateResult reports whether the current value is a computed,
// non-editable intermediate.
func (s *Session) IsIntermediateResult() bool { return s.calc.IsIntermediateResult() }

// InError reports whether the engine is in the error state.
func (s *Session) InError() bool { return s.calc.InError() }

// DisplayTokens returns the ordered display tokens, committed sequence
// first, current entry last.
func (s *Session) DisplayTokens() []token.Token { return s.calc.DisplayTokens() }

// History returns the calculation history, newest first.
func (s *Session) History() []calc.Entry { return s.calc.History() }

// Variables returns the saved variables, newest first.
func (s *Session) Variables() []calc.Variable { return s.calc.Variables() }

// VariableByLabel looks up a saved variable.
func (s *Session) VariableByLabel(label string) (calc.Variable, bool) {
	return s.calc.VariableByLabel(label)
}
