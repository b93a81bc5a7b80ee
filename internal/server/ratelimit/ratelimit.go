// Package ratelimit provides per-client, per-endpoint token bucket rate limiting.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleEviction is how long a bucket may go unused before cleanup drops it.
const idleEviction = time.Hour

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	limit    int
	lastSeen time.Time
}

// Limiter manages rate limiting for multiple clients.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	config    Config
	whitelist map[string]bool
	blacklist map[string]bool
	now       func() time.Time
	done      chan struct{}
	stopOnce  sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
// A nil config uses DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}

	l := &Limiter{
		buckets:   make(map[string]*bucket),
		config:    cfg,
		whitelist: toSet(cfg.Whitelist),
		blacklist: toSet(cfg.Blacklist),
		now:       time.Now,
		done:      make(chan struct{}),
	}

	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.cleanupRoutine(cfg.CleanupInterval)
	}
	return l
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	ep := MatchEndpoint(endpoint, method, l.config.Endpoints)
	if ep == nil {
		ep = &EndpointConfig{
			Limit:  l.config.RequestsPerMinute,
			Window: time.Minute,
			Burst:  l.config.Burst,
		}
	}

	// Unlimited endpoint (e.g., health check)
	if ep.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	b := l.getBucket(clientID+":"+endpoint+":"+method, ep, now)

	info := Info{Limit: b.limit}
	r := b.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		info.RetryAfter = delay
	} else {
		info.Allowed = true
	}

	tokens := b.limiter.TokensAt(now)
	if tokens < 0 {
		tokens = 0
	}
	info.Remaining = int(tokens)
	info.ResetTime = now
	if missing := float64(b.limiter.Burst()) - tokens; missing > 0 {
		info.ResetTime = now.Add(time.Duration(missing / float64(b.limiter.Limit()) * float64(time.Second)))
	}

	return info.Allowed, info
}

// getBucket gets or creates the bucket for key. Limit tokens refill evenly over the
// window; burst defaults to the limit.
func (l *Limiter) getBucket(key string, ep *EndpointConfig, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		window := ep.Window
		if window <= 0 {
			window = time.Minute
		}
		burst := ep.Burst
		if burst <= 0 {
			burst = ep.Limit
		}
		every := rate.Every(window / time.Duration(ep.Limit))
		b = &bucket{limiter: rate.NewLimiter(every, burst), limit: ep.Limit}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b
}

// Len returns the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *Limiter) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(idleEviction)
		case <-l.done:
			return
		}
	}
}

// cleanup removes buckets that have not been used for longer than maxIdle.
func (l *Limiter) cleanup(maxIdle time.Duration) {
	cutoff := l.now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}
