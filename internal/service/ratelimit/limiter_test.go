package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestLimiterBurstThenRefill(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	l := New(3, 1, WithClock(clk.Now))

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("a"), "burst %d", i)
	}
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "keys are independent")

	clk.Advance(500 * time.Millisecond)
	assert.False(t, l.Allow("a"))

	clk.Advance(500 * time.Millisecond)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestLimiterRefillCapped(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	l := New(2, 10, WithClock(clk.Now))
	l.Allow("a")

	clk.Advance(time.Hour)
	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestLimiterPrune(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	l := New(2, 1, WithClock(clk.Now))
	l.Allow("a")
	clk.Advance(time.Second)
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	clk.Advance(time.Second)
	assert.Equal(t, 1, l.Prune())
	assert.Equal(t, 1, l.Len())
}
