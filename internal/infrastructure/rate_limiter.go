package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key (client IP).
type RateLimiter struct {
	visitors    map[string]*visitor
	rps         rate.Limit
	burst       int
	idleTimeout time.Duration
	lastCleanup time.Time
	mutex       sync.Mutex
	now         func() time.Time
}

func NewRateLimiter(rps float64, burst int, idleTimeout time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors:    make(map[string]*visitor),
		rps:         rate.Limit(rps),
		burst:       burst,
		idleTimeout: idleTimeout,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	rl.cleanupStaleEntries(now)

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// cleanupStaleEntries drops idle visitors at most once per idle timeout.
// Callers hold the mutex.
func (rl *RateLimiter) cleanupStaleEntries(now time.Time) {
	if now.Sub(rl.lastCleanup) < rl.idleTimeout {
		return
	}
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTimeout {
			delete(rl.visitors, key)
		}
	}
	rl.lastCleanup = now
}
