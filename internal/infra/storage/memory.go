package storage

import (
	"context"
	"sync"
)

// Memory es un Bucket para tests.
type Memory struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Err     error
}

func NewMemory() *Memory {
	return &Memory{Objects: map[string][]byte{}}
}

func (m *Memory) Upload(_ context.Context, key string, body []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Objects[key] = body
	return m.PublicURL(key), nil
}

func (m *Memory) PublicURL(key string) string {
	return "memory://" + key
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Objects)
}
