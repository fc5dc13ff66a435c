package storage

import (
	"context"
	"sync"
)

// MemoryBlob: テスト・開発用のインメモリ実装。
type MemoryBlob struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryBlob() *MemoryBlob { return &MemoryBlob{} }

func (b *MemoryBlob) Load(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *MemoryBlob) Store(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = make([]byte, len(data))
	copy(b.data, data)
	return nil
}
