// Package memory holds in-process adapters used for single-node deployments and tests.
package memory

import (
	"context"
	"sync"

	"delegated-treasury/internal/adapter/storage/txbuffer"
	"delegated-treasury/internal/core/ports"
)

// LedgerStore implements ports.LedgerStore over a guarded map.
type LedgerStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewLedgerStore creates an empty in-memory ledger.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{data: make(map[string][]byte)}
}

type reader struct {
	data map[string][]byte
}

func (r reader) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r reader) Has(_ context.Context, key string) (bool, error) {
	_, ok := r.data[key]
	return ok, nil
}

// View runs fn against a consistent snapshot.
func (s *LedgerStore) View(ctx context.Context, fn func(r ports.LedgerReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(reader{data: s.data})
}

// Update serializes writers; fn's writes are applied only if it returns nil.
func (s *LedgerStore) Update(ctx context.Context, fn func(tx ports.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := txbuffer.New(reader{data: s.data}.Get)
	if err := fn(buf); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	buf.Each(func(key string, value []byte, deleted bool) {
		if deleted {
			delete(s.data, key)
			return
		}
		s.data[key] = value
	})
	return nil
}

// Len reports the number of stored keys.
func (s *LedgerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
