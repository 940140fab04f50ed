package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps objects in process. Used by tests and STORAGE_DRIVER=memory.
type MemoryBackend struct {
	mu      sync.Mutex
	Objects map[string]Object
}

type Object struct {
	Body        []byte
	ContentType string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{Objects: make(map[string]Object)}
}

func (b *MemoryBackend) Put(_ context.Context, key string, body []byte, contentType string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Objects[key] = Object{Body: body, ContentType: contentType}
	return nil
}

func (b *MemoryBackend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Objects)
}

var _ Backend = (*MemoryBackend)(nil)
