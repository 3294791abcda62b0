package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(3, 1, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := bucket.Allow()
		assert.True(t, allowed, "call %d should be allowed", i+1)
	}

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)
	allowed, _ = bucket.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, _ = bucket.Allow()
	assert.True(t, allowed)
}

func TestRateLimiterSendMessageQuota(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		allowed, _ := rl.Allow("owner-1", ActionSendMessage)
		assert.True(t, allowed, "message %d should be allowed", i+1)
	}

	allowed, _ := rl.Allow("owner-1", ActionSendMessage)
	assert.False(t, allowed)

	// Other users keep their own quota.
	allowed, _ = rl.Allow("emp-1", ActionSendMessage)
	assert.True(t, allowed)
}

func TestRateLimiterAccessCodeQuota(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := rl.Allow("10.0.0.1", ActionRequestAccessCode)
		assert.True(t, allowed)
	}

	allowed, _ := rl.Allow("10.0.0.1", ActionRequestAccessCode)
	assert.False(t, allowed)
}

func TestRateLimiterStatus(t *testing.T) {
	rl := NewRateLimiter()

	tokens, max := rl.GetStatus("owner-1", ActionSendMessage)
	assert.Equal(t, 0, tokens)
	assert.Equal(t, 0, max)

	rl.Allow("owner-1", ActionSendMessage)

	tokens, max = rl.GetStatus("owner-1", ActionSendMessage)
	assert.Equal(t, 9, tokens)
	assert.Equal(t, 10, max)
}
