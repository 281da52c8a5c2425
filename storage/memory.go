package storage

import (
	"context"
	"sync"
)

// MemoryGateway keeps documents in process memory. Used for development and
// tests; nothing survives a restart.
type MemoryGateway struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ Gateway = (*MemoryGateway)(nil)

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{docs: make(map[string][]byte)}
}

func (g *MemoryGateway) Load(_ context.Context, key string) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	data, ok := g.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (g *MemoryGateway) Save(ctx context.Context, docs ...Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, d := range docs {
		g.docs[d.Key] = append([]byte(nil), d.Data...)
	}
	return nil
}
