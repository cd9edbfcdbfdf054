// Package ratelimit keeps one token-bucket limiter per client key (the
// remote IP) for the credential endpoints.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long a client entry may stay unused before Cleanup
// removes it.
const DefaultIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter manages per-client limiters. A nil *Limiter allows everything.
type Limiter struct {
	rate    rate.Limit
	burst   int
	idleTTL time.Duration

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	now func() time.Time
}

// New returns a Limiter granting perSecond requests per second with the
// given burst to every client. It returns nil when perSecond is not
// positive, which disables limiting.
func New(perSecond float64, burst int, idleTTL time.Duration) *Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}

	return &Limiter{
		rate:     rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  idleTTL,
		limiters: make(map[string]*clientLimiter),
		now:      time.Now,
	}
}

// Allow consumes one token for key. When the bucket is empty it returns
// false together with the suggested wait before retrying.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}

	now := l.now()

	l.mu.Lock()
	cl, ok := l.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = cl
	}
	cl.lastAccess = now
	l.mu.Unlock()

	if cl.limiter.AllowN(now, 1) {
		return true, 0
	}

	return false, l.RetryAfter()
}

// RetryAfter is the time needed to refill one token, rounded up to a whole
// second.
func (l *Limiter) RetryAfter() time.Duration {
	seconds := math.Ceil(1.0 / float64(l.rate))
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

// Cleanup removes entries idle for longer than the configured TTL and
// returns how many were removed.
func (l *Limiter) Cleanup(now time.Time) int {
	if l == nil {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, cl := range l.limiters {
		if now.Sub(cl.lastAccess) > l.idleTTL {
			delete(l.limiters, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	if l == nil {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// IdleTTL returns the idle time after which entries are evicted.
func (l *Limiter) IdleTTL() time.Duration {
	if l == nil {
		return 0
	}
	return l.idleTTL
}
