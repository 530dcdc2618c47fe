// Package txbuffer stages ledger writes over a read-only base until commit.
package txbuffer

import (
	"context"
	"sort"
)

// BaseReader loads committed state for a key; it returns nil when absent.
type BaseReader func(ctx context.Context, key string) ([]byte, error)

type write struct {
	value   []byte
	deleted bool
}

// Buffer implements ports.LedgerTx by layering pending writes over a BaseReader.
type Buffer struct {
	base   BaseReader
	writes map[string]write
}

// New creates an empty buffer over base.
func New(base BaseReader) *Buffer {
	return &Buffer{base: base, writes: make(map[string]write)}
}

// Get returns the pending value if the key was written, else the base value.
func (b *Buffer) Get(ctx context.Context, key string) ([]byte, error) {
	if w, ok := b.writes[key]; ok {
		if w.deleted {
			return nil, nil
		}
		return clone(w.value), nil
	}
	return b.base(ctx, key)
}

func (b *Buffer) Has(ctx context.Context, key string) (bool, error) {
	v, err := b.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

func (b *Buffer) Set(_ context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	b.writes[key] = write{value: clone(value)}
	return nil
}

func (b *Buffer) Delete(_ context.Context, key string) error {
	b.writes[key] = write{deleted: true}
	return nil
}

// Len reports the number of staged keys.
func (b *Buffer) Len() int { return len(b.writes) }

// Each visits staged writes in key order. value is nil for deletions.
func (b *Buffer) Each(fn func(key string, value []byte, deleted bool)) {
	keys := make([]string, 0, len(b.writes))
	for k := range b.writes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w := b.writes[k]
		fn(k, w.value, w.deleted)
	}
}

func clone(v []byte) []byte {
	if v == nil {
		return nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
