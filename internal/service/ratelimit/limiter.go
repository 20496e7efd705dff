// Package ratelimit implements per-key token buckets.
package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter hands out one token per call per key, refilling continuously.
type Limiter struct {
	capacity     float64
	refillPerSec float64
	now          func() time.Time

	mu sync.Mutex
	m  map[string]*bucket
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(capacity, refillPerSec float64, opts ...Option) *Limiter {
	l := &Limiter{
		capacity:     capacity,
		refillPerSec: refillPerSec,
		now:          time.Now,
		m:            make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow returns true if one token can be consumed for key.
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: l.capacity, last: now}
		l.m[key] = b
	}

	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens += elapsed * l.refillPerSec
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Prune drops buckets that have been idle long enough to be full again.
func (l *Limiter) Prune() int {
	now := l.now()
	full := time.Duration(l.capacity / l.refillPerSec * float64(time.Second))

	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for k, b := range l.m {
		if now.Sub(b.last) >= full {
			delete(l.m, k)
			n++
		}
	}
	return n
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}
