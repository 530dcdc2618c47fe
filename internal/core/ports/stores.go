package ports

import (
	"context"
	"time"
)

// LedgerReader reads committed (or, inside Update, pending) ledger state.
type LedgerReader interface {
	// Get returns the value under key, or nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Has(ctx context.Context, key string) (bool, error)
}

// LedgerTx is a write unit. Reads observe the transaction's own writes.
type LedgerTx interface {
	LedgerReader
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LedgerStore is the durable keyed store every service persists its state in.
// Update calls are serialized against each other; writes made in fn commit
// together when fn returns nil and are discarded otherwise.
type LedgerStore interface {
	View(ctx context.Context, fn func(r LedgerReader) error) error
	Update(ctx context.Context, fn func(tx LedgerTx) error) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, identity string, nonce string, ttl time.Duration) (bool, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts requests per key.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}
