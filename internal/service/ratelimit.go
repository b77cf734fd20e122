package service

import (
	"sync"
	"time"
)

// LoginLimiter throttles credential checks per client key using a
// token bucket. It is safe for concurrent use; buckets untouched for a
// while are pruned on access, so no background goroutine is needed.
type LoginLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*loginBucket
	rate     float64 // tokens added per second
	capacity float64
	lastGC   time.Time
}

type loginBucket struct {
	tokens float64
	last   time.Time
}

// NewLoginLimiter creates a limiter allowing capacity attempts per key
// in a burst, refilled at rate attempts per second.
func NewLoginLimiter(rate, capacity float64) *LoginLimiter {
	return &LoginLimiter{
		buckets:  make(map[string]*loginBucket),
		rate:     rate,
		capacity: capacity,
		lastGC:   time.Now(),
	}
}

// Allow reports whether the given key may attempt another login. Each
// call consumes one token.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.gcLocked(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &loginBucket{tokens: l.capacity, last: now}
		l.buckets[key] = b
	}

	b.tokens = min(b.tokens+now.Sub(b.last).Seconds()*l.rate, l.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// gcLocked drops buckets idle long enough to have refilled completely.
func (l *LoginLimiter) gcLocked(now time.Time) {
	if now.Sub(l.lastGC) < 10*time.Minute {
		return
	}
	l.lastGC = now
	idle := time.Duration(l.capacity/l.rate) * time.Second
	cutoff := now.Add(-idle - 10*time.Minute)
	for key, b := range l.buckets {
		if b.last.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
