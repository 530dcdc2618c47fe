package memory

import (
	"context"
	"sync"
	"time"
)

// NonceStore implements ports.NonceStore in process memory.
type NonceStore struct {
	mu    sync.Mutex
	seen  map[string]time.Time // key -> expiry
	hits  uint64
	nowFn func() time.Time
}

// NewNonceStore creates an empty nonce store.
func NewNonceStore() *NonceStore {
	return &NonceStore{seen: make(map[string]time.Time), nowFn: time.Now}
}

// CheckAndSet records nonce for identity and reports whether it was unused.
func (s *NonceStore) CheckAndSet(_ context.Context, identity string, nonce string, ttl time.Duration) (bool, error) {
	key := identity + ":" + nonce
	now := s.nowFn()

	s.mu.Lock()
	defer s.mu.Unlock()

	if exp, ok := s.seen[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.seen[key] = now.Add(ttl)

	s.hits++
	if s.hits%512 == 0 {
		for k, exp := range s.seen {
			if !now.Before(exp) {
				delete(s.seen, k)
			}
		}
	}
	return true, nil
}
