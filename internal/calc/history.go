package calc

import (
	"errors"
	"time"

	"github.com/abacist/abacus/internal/token"
)

// Entry is an immutable history record: the committed token sequence at
// calculation time and its formatted result.
type Entry struct {
	ID     string
	Tokens []token.Token
	Result string
	At     time.Time
}

// Expression renders the entry's token sequence as display text.
func (e Entry) Expression() string {
	out := ""
	for i, t := range e.Tokens {
		if i > 0 {
			out += " "
		}
		out += t.Display()
	}
	return out
}

// ErrNoSuchEntry reports a history index out of range.
var ErrNoSuchEntry = errors.New("no such history entry")

// pushHistory prepends an entry, evicting the oldest past the limit.
func (c *Calculator) pushHistory(e Entry) {
	c.history = append([]Entry{e}, c.history...)
	if len(c.history) > c.historyLimit {
		c.history = c.history[:c.historyLimit]
	}
}

// History returns the calculation history, most recent first.
func (c *Calculator) History() []Entry {
	out := make([]Entry, len(c.history))
	copy(out, c.history)
	return out
}

// HistoryLimit returns the configured history bound.
func (c *Calculator) HistoryLimit() int {
	return c.historyLimit
}

// LoadFromHistory clears all expression state and restores the indexed
// entry as an editable expression: its tokens become the committed
// sequence and its result becomes the shown value.
func (c *Calculator) LoadFromHistory(index int) error {
	if c.inError {
		return nil
	}
	if index < 0 || index >= len(c.history) {
		return ErrNoSuchEntry
	}
	e := c.history[index]
	c.Clear()
	c.committed = token.CloneAll(e.Tokens)
	c.entry.value = e.Result
	c.entry.resetScreen = true
	return nil
}

// RestoreHistory replaces the in-memory history with entries loaded
// from a persistence collaborator, newest first, trimmed to the limit.
func (c *Calculator) RestoreHistory(entries []Entry) {
	if len(entries) > c.historyLimit {
		entries = entries[:c.historyLimit]
	}
	c.history = make([]Entry, len(entries))
	copy(c.history, entries)
}
