package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMsgRateLimiterWindow(t *testing.T) {
	rl := NewMsgRateLimiter(2, 50*time.Millisecond)

	assert.True(t, rl.Allow("c1"))
	assert.True(t, rl.Allow("c1"))
	assert.False(t, rl.Allow("c1"))

	// Another connection has its own window.
	assert.True(t, rl.Allow("c2"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("c1"), "window slides, fresh attempts allowed")
}

func TestMsgRateLimiterDisabled(t *testing.T) {
	rl := NewMsgRateLimiter(0, time.Second)
	for i := 0; i < 1000; i++ {
		assert.True(t, rl.Allow("c1"))
	}
}

func TestMsgRateLimiterForget(t *testing.T) {
	rl := NewMsgRateLimiter(1, time.Minute)
	assert.True(t, rl.Allow("c1"))
	assert.False(t, rl.Allow("c1"))

	rl.Forget("c1")
	assert.True(t, rl.Allow("c1"))
}
