package store

import (
	"errors"
	"slices"
	"sync"
)

var ErrKeyNotFound = errors.New("key not found")

// Backend is a string-keyed byte store. Put replaces any prior value.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Close() error
}

type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (b *MemoryBackend) Put(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = slices.Clone(data)
	return nil
}

func (b *MemoryBackend) Close() error { return nil }
