package store

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

// Storage keys. Values are plain strings; booleans are stored as "true"/"false".
const (
	KeyDocument = "markdown-content"
	KeyDarkMode = "dark-mode"
)

// ErrNotFound is returned by the lower-level lookups when a key has never been saved.
var ErrNotFound = errors.New("store: key not found")

// Preferences is the persistence surface the editor depends on.
//
// Load never fails: an unreadable store looks exactly like an absent key.
// Save reports the error so callers can log it; it is never shown to the user.
type Preferences interface {
	Load(key string) (string, bool)
	Save(key, value string) error
}

// Store is a Preferences backend that also owns resources.
type Store interface {
	Preferences
	Clear() error
	Close() error
}

func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// LoadBool reads a boolean preference. ok is false when the key is absent or
// the stored value does not parse.
func LoadBool(p Preferences, key string) (v bool, ok bool) {
	if p == nil {
		return false, false
	}
	raw, found := p.Load(key)
	if !found {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return b, true
}

// Memory is an in-process Store. It backs tests and stands in when the
// database cannot be opened, in which case nothing survives a restart.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	writes int
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Load(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	m.writes++
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, KeyDocument)
	delete(m.values, KeyDarkMode)
	return nil
}

func (m *Memory) Close() error { return nil }

// Writes reports how many Save calls have succeeded.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
