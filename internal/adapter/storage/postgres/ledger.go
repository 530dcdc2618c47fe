package postgres

import (
	"context"
	"errors"
	"fmt"

	"delegated-treasury/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// Schema creates the ledger table.
const Schema = `
CREATE TABLE IF NOT EXISTS ledger_entries (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// ledgerLockID keys the transaction-scoped advisory lock serializing writers.
const ledgerLockID int64 = 0x4454524c4544 // "DTRLED"

// LedgerStore implements ports.LedgerStore on a single PostgreSQL table.
type LedgerStore struct {
	pool Pool
}

// NewLedgerStore creates a PostgreSQL-backed ledger store.
func NewLedgerStore(pool Pool) *LedgerStore {
	return &LedgerStore{pool: pool}
}

// EnsureSchema creates the ledger table if missing.
func (s *LedgerStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create ledger schema: %w", err)
	}
	return nil
}

type entryTx struct {
	tx pgx.Tx
}

func (e entryTx) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := e.tx.QueryRow(ctx, `SELECT value FROM ledger_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (e entryTx) Has(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := e.tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ledger_entries WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check ledger entry: %w", err)
	}
	return exists, nil
}

func (e entryTx) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := e.tx.Exec(ctx, `
		INSERT INTO ledger_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set ledger entry: %w", err)
	}
	return nil
}

func (e entryTx) Delete(ctx context.Context, key string) error {
	if _, err := e.tx.Exec(ctx, `DELETE FROM ledger_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	return nil
}

// View runs fn inside a read-only repeatable-read transaction.
func (s *LedgerStore) View(ctx context.Context, fn func(r ports.LedgerReader) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin ledger view: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `SET TRANSACTION ISOLATION LEVEL REPEATABLE READ, READ ONLY`); err != nil {
		return fmt.Errorf("set ledger view isolation: %w", err)
	}
	if err := fn(entryTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ledger view: %w", err)
	}
	return nil
}

// Update runs fn in a transaction holding the ledger advisory lock.
func (s *LedgerStore) Update(ctx context.Context, fn func(tx ports.LedgerTx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin ledger update: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ledgerLockID); err != nil {
		return fmt.Errorf("acquire ledger lock: %w", err)
	}
	if err := fn(entryTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ledger update: %w", err)
	}
	return nil
}
