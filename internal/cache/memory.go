package cache

import (
	"context"
	"sync"
)

// Memory is the process-lifetime cache backend.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Get(_ context.Context, key string) (*Entry, bool, error) {
	if key == NoKey {
		return nil, false, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return &e, true, nil
}

func (m *Memory) Set(_ context.Context, key string, e *Entry) error {
	if key == NoKey || e == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = *e
	return nil
}
