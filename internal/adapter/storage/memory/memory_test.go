package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"delegated-treasury/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerStore_UpdateCommits(t *testing.T) {
	ctx := context.Background()
	s := NewLedgerStore()

	err := s.Update(ctx, func(tx ports.LedgerTx) error {
		require.NoError(t, tx.Set(ctx, "a", []byte("1")))
		v, err := tx.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", string(v), "tx must read its own writes")
		return nil
	})
	require.NoError(t, err)

	err = s.View(ctx, func(r ports.LedgerReader) error {
		v, err := r.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", string(v))
		has, err := r.Has(ctx, "b")
		require.NoError(t, err)
		assert.False(t, has)
		return nil
	})
	require.NoError(t, err)
}

func TestLedgerStore_UpdateRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewLedgerStore()
	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		return tx.Set(ctx, "keep", []byte("x"))
	}))

	boom := errors.New("boom")
	err := s.Update(ctx, func(tx ports.LedgerTx) error {
		_ = tx.Set(ctx, "new", []byte("y"))
		_ = tx.Delete(ctx, "keep")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.Len())

	_ = s.View(ctx, func(r ports.LedgerReader) error {
		has, _ := r.Has(ctx, "keep")
		assert.True(t, has)
		return nil
	})
}

func TestLedgerStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewLedgerStore()
	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		return tx.Set(ctx, "k", []byte("v"))
	}))
	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		return tx.Delete(ctx, "k")
	}))
	assert.Equal(t, 0, s.Len())
}

func TestLedgerStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewLedgerStore()
	called := false
	err := s.Update(ctx, func(ports.LedgerTx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestLedgerStore_SerializesUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewLedgerStore()

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, func(tx ports.LedgerTx) error {
				v, _ := tx.Get(ctx, "counter")
				return tx.Set(ctx, "counter", append(v, 'x'))
			})
		}()
	}
	wg.Wait()

	_ = s.View(ctx, func(r ports.LedgerReader) error {
		v, _ := r.Get(ctx, "counter")
		assert.Len(t, v, workers, "no lost updates")
		return nil
	})
}

func TestNonceStore_CheckAndSet(t *testing.T) {
	ctx := context.Background()
	s := NewNonceStore()
	now := time.Now()
	s.nowFn = func() time.Time { return now }

	ok, err := s.CheckAndSet(ctx, "alice", "n1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CheckAndSet(ctx, "alice", "n1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "replayed nonce must be rejected")

	ok, _ = s.CheckAndSet(ctx, "bob", "n1", time.Minute)
	assert.True(t, ok, "nonces are scoped per identity")

	now = now.Add(2 * time.Minute)
	ok, _ = s.CheckAndSet(ctx, "alice", "n1", time.Minute)
	assert.True(t, ok, "expired nonce can be reused")
}

func TestRateLimitStore_Allow(t *testing.T) {
	ctx := context.Background()
	s := NewRateLimitStore(time.Minute)
	now := time.Unix(1_700_000_000, 0)
	s.nowFn = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		res, err := s.Allow(ctx, "k", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, int64(3), res.Limit)
		assert.Equal(t, int64(2-i), res.Remaining)
	}

	res, err := s.Allow(ctx, "k", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)
	assert.Greater(t, res.ResetAt, now.Unix())

	res, _ = s.Allow(ctx, "other", 3, time.Minute)
	assert.True(t, res.Allowed, "keys are independent")

	now = now.Add(20 * time.Second)
	res, _ = s.Allow(ctx, "k", 3, time.Minute)
	assert.True(t, res.Allowed, "one token refills every 20s")
}
