// Package session models the browser-session state of the storefront UI:
// cart, wishlist, and order history live in a session-scoped key-value
// store, with the server acting only as a best-effort mirror of the cart.
package session

import "sync"

// Store is the session-scoped key-value boundary. Implementations persist
// JSON blobs under fixed keys; the zero-value semantics of a missing key are
// the caller's concern.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string)
}

// Memory is the in-process Store used by tests and the default session
// scope.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}
