package memory

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"delegated-treasury/internal/core/ports"

	"golang.org/x/time/rate"
)

// RateLimitStore implements ports.RateLimitStore with a token bucket per key.
// A rule of limit per window refills at limit/window with a burst of limit.
type RateLimitStore struct {
	mu      sync.Mutex
	byKey   map[string]*entry
	hits    uint64
	idleTTL time.Duration
	nowFn   func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimitStore creates a limiter that evicts keys idle for idleTTL.
func NewRateLimitStore(idleTTL time.Duration) *RateLimitStore {
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &RateLimitStore{
		byKey:   make(map[string]*entry),
		idleTTL: idleTTL,
		nowFn:   time.Now,
	}
}

// Allow consumes one token for key.
func (s *RateLimitStore) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	now := s.nowFn()
	key = strings.TrimSpace(key)
	every := rate.Limit(float64(limit) / window.Seconds())

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byKey[key]
	if !ok || e.limiter.Burst() != int(limit) || e.limiter.Limit() != every {
		e = &entry{limiter: rate.NewLimiter(every, int(limit))}
		s.byKey[key] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	tokens := e.limiter.TokensAt(now)
	remaining := int64(math.Floor(tokens))
	if remaining < 0 {
		remaining = 0
	}
	refill := time.Duration((float64(limit) - tokens) / float64(every) * float64(time.Second))

	s.hits++
	if s.hits%512 == 0 {
		cutoff := now.Add(-s.idleTTL)
		for k, v := range s.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(s.byKey, k)
			}
		}
	}

	return &ports.RateLimitResult{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(refill).Unix(),
	}, nil
}
