// Package store provides persistence for calculator history and saved
// variables. The engine itself only reads and writes in-memory state;
// a Store is the external collaborator a session syncs that state with.
package store

import "github.com/abacist/abacus/internal/calc"

// Store is the interface for calculator persistence.
type Store interface {
	// SaveVariable upserts a variable keyed on its label.
	SaveVariable(v calc.Variable) error
	// DeleteVariable removes a variable by label.
	DeleteVariable(label string) error
	// Variables returns all saved variables, newest first.
	Variables() ([]calc.Variable, error)
	// AppendHistory records one calculation.
	AppendHistory(e calc.Entry) error
	// History returns recorded calculations, newest first, at most
	// limit entries (0 means all).
	History(limit int) ([]calc.Entry, error)
	// Close releases resources.
	Close() error
}
