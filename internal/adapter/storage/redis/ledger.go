package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delegated-treasury/internal/adapter/storage/txbuffer"
	"delegated-treasury/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ErrLockLost is returned when the ledger lock expired before commit.
var ErrLockLost = errors.New("ledger lock lost before commit")

var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LedgerStore implements ports.LedgerStore on Redis.
// All access is serialized by a single lock key holding a random token;
// commits run under WATCH on that key so an expired lock aborts the write.
type LedgerStore struct {
	client     *goredis.Client
	prefix     string
	lockKey    string
	lockTTL    time.Duration
	retryDelay time.Duration
}

// NewLedgerStore creates a Redis-backed ledger store.
func NewLedgerStore(client *goredis.Client, lockTTL time.Duration) *LedgerStore {
	return &LedgerStore{
		client:     client,
		prefix:     "ledger:",
		lockKey:    "ledger-lock",
		lockTTL:    lockTTL,
		retryDelay: 10 * time.Millisecond,
	}
}

func (s *LedgerStore) get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis ledger get: %w", err)
	}
	return val, nil
}

type reader struct {
	s *LedgerStore
}

func (r reader) Get(ctx context.Context, key string) ([]byte, error) {
	return r.s.get(ctx, key)
}

func (r reader) Has(ctx context.Context, key string) (bool, error) {
	n, err := r.s.client.Exists(ctx, r.s.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis ledger exists: %w", err)
	}
	return n > 0, nil
}

// View runs fn while holding the ledger lock so multi-key reads are consistent.
func (s *LedgerStore) View(ctx context.Context, fn func(r ports.LedgerReader) error) error {
	token, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer s.release(token)

	return fn(reader{s: s})
}

// Update stages fn's writes and applies them in one MULTI/EXEC.
func (s *LedgerStore) Update(ctx context.Context, fn func(tx ports.LedgerTx) error) error {
	token, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer s.release(token)

	buf := txbuffer.New(s.get)
	if err := fn(buf); err != nil {
		return err
	}
	if buf.Len() == 0 {
		return nil
	}

	err = s.client.Watch(ctx, func(tx *goredis.Tx) error {
		held, err := tx.Get(ctx, s.lockKey).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return fmt.Errorf("redis ledger lock check: %w", err)
		}
		if held != token {
			return ErrLockLost
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			buf.Each(func(key string, value []byte, deleted bool) {
				if deleted {
					pipe.Del(ctx, s.prefix+key)
					return
				}
				pipe.Set(ctx, s.prefix+key, value, 0)
			})
			return nil
		})
		return err
	}, s.lockKey)
	if err != nil {
		if errors.Is(err, goredis.TxFailedErr) {
			return ErrLockLost
		}
		return fmt.Errorf("redis ledger commit: %w", err)
	}
	return nil
}

func (s *LedgerStore) acquire(ctx context.Context) (string, error) {
	token := uuid.NewString()
	for {
		ok, err := s.client.SetArgs(ctx, s.lockKey, token, goredis.SetArgs{
			Mode: "NX",
			TTL:  s.lockTTL,
		}).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return "", fmt.Errorf("redis ledger lock: %w", err)
		}
		if ok == "OK" {
			return token, nil
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("redis ledger lock: %w", ctx.Err())
		case <-time.After(s.retryDelay):
		}
	}
}

// release deletes the lock only if it still holds token. It runs detached from
// the request context so a canceled request still frees the lock.
func (s *LedgerStore) release(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	releaseScript.Run(ctx, s.client, []string{s.lockKey}, token) //nolint:errcheck
}
