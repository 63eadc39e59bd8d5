package store

import (
	"sort"
	"sync"

	"github.com/abacist/abacus/internal/calc"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu      sync.RWMutex
	vars    map[string]calc.Variable
	history []calc.Entry
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{vars: make(map[string]calc.Variable)}
}

// SaveVariable upserts a variable by label.
func (m *Memory) SaveVariable(v calc.Variable) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars[v.Label] = v
	return nil
}

// DeleteVariable removes a variable by label.
func (m *Memory) DeleteVariable(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, label)
	return nil
}

// Variables returns saved variables, newest first.
func (m *Memory) Variables() ([]calc.Variable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]calc.Variable, 0, len(m.vars))
	for _, v := range m.vars {
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

// AppendHistory records one calculation.
func (m *Memory) AppendHistory(e calc.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, e)
	return nil
}

// History returns calculations, newest first.
func (m *Memory) History(limit int) ([]calc.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]calc.Entry, 0, len(m.history))
	for i := len(m.history) - 1; i >= 0; i-- {
		out = append(out, m.history[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error {
	return nil
}
