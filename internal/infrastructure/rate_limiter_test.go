package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurstPerKey(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// other clients have their own bucket
	assert.True(t, rl.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterDropsIdleVisitors(t *testing.T) {
	now := time.Now()
	rl := NewRateLimiter(1, 1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	assert.Len(t, rl.visitors, 1)

	now = now.Add(2 * time.Minute)
	rl.Allow("10.0.0.2")

	assert.Len(t, rl.visitors, 1)
	_, exists := rl.visitors["10.0.0.2"]
	assert.True(t, exists)
}
