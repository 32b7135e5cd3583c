package storage

import "sync"

// Memory is an in-process store used in tests and when no database can be
// opened. Values are lost on exit.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

// HighScore returns the value for key, or 0.
func (m *Memory) HighScore(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// SetHighScore stores value under key unless a higher value is already
// stored.
func (m *Memory) SetHighScore(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.values[key]; ok && cur >= value {
		return nil
	}
	m.values[key] = value
	return nil
}

// ClearHighScore removes key.
func (m *Memory) ClearHighScore(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Scalars is implemented by Store and Memory.
type Scalars interface {
	HighScore(key string) (int, error)
	SetHighScore(key string, value int) error
}

// KeyedScore binds a store to one key, giving the single best-score scalar
// a session reads and writes.
type KeyedScore struct {
	Store Scalars
	Key   string
}

// Load reads the scalar.
func (k KeyedScore) Load() (int, error) {
	return k.Store.HighScore(k.Key)
}

// Save offers value as the new best; lower values are ignored.
func (k KeyedScore) Save(value int) error {
	return k.Store.SetHighScore(k.Key, value)
}
