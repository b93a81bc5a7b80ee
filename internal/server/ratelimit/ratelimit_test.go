package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frozen pins the limiter clock so refills only happen when the test advances it.
func frozen(l *Limiter, start time.Time) *time.Time {
	now := start
	l.now = func() time.Time { return now }
	return &now
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 10, Burst: 10})
	defer limiter.Stop()
	frozen(limiter, time.Unix(1_700_000_000, 0))

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/skills/suggest", "POST")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/skills/suggest", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.InDelta(t, float64(6*time.Second), float64(info.RetryAfter), float64(time.Millisecond))
	assert.True(t, info.ResetTime.After(time.Unix(1_700_000_000, 0)))
}

func TestLimiter_Refill(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 60, Burst: 2})
	defer limiter.Stop()
	now := frozen(limiter, time.Unix(1_700_000_000, 0))

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("c", "/roles", "GET")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("c", "/roles", "GET")
	require.False(t, allowed)

	*now = now.Add(time.Second)
	allowed, _ = limiter.Allow("c", "/roles", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("c", "/roles", "GET")
	assert.False(t, allowed)
}

func TestLimiter_DeniedRequestsDoNotConsume(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 60, Burst: 1})
	defer limiter.Stop()
	now := frozen(limiter, time.Unix(1_700_000_000, 0))

	allowed, _ := limiter.Allow("c", "/roles", "GET")
	require.True(t, allowed)
	for i := 0; i < 5; i++ {
		allowed, _ = limiter.Allow("c", "/roles", "GET")
		require.False(t, allowed)
	}

	*now = now.Add(time.Second)
	allowed, _ = limiter.Allow("c", "/roles", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 1, Whitelist: []string{"127.0.0.1"}})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/roles", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 1000, Blacklist: []string{"192.168.1.1"}})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/roles", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/roles", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:           true,
		RequestsPerMinute: 1000,
		Endpoints: []EndpointConfig{
			{Path: "/recommendations", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	})
	defer limiter.Stop()
	frozen(limiter, time.Unix(1_700_000_000, 0))

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("c", "/recommendations", "POST")
		require.True(t, allowed)
		assert.Equal(t, 5, info.Limit)
	}
	allowed, info := limiter.Allow("c", "/recommendations", "POST")
	assert.False(t, allowed)
	assert.InDelta(t, float64(12*time.Minute), float64(info.RetryAfter), float64(time.Millisecond))

	allowed, info = limiter.Allow("c", "/feedback", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_HealthAndMetricsUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 1, Burst: 1})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("c", "/health", "GET")
		require.True(t, allowed)
		allowed, _ = limiter.Allow("c", "/metrics", "GET")
		require.True(t, allowed)
	}
	assert.Equal(t, 0, limiter.Len())
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 100, Burst: 100})
	defer limiter.Stop()
	frozen(limiter, time.Unix(1_700_000_000, 0))

	var wg sync.WaitGroup
	var allowedCount atomic.Int64
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("c", "/roles", "GET"); allowed {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), allowedCount.Load())
}

func TestLimiter_Cleanup(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 10})
	defer limiter.Stop()
	now := frozen(limiter, time.Unix(1_700_000_000, 0))

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/roles", "GET")
		require.True(t, allowed)
	}
	require.Equal(t, 10, limiter.Len())

	*now = now.Add(2 * time.Hour)
	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/roles", "GET")
	}
	limiter.cleanup(idleEviction)

	assert.Equal(t, 5, limiter.Len())
}

func TestLimiter_Burst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:           true,
		RequestsPerMinute: 10,
		Endpoints:         []EndpointConfig{{Path: "/burst", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5}},
	})
	defer limiter.Stop()
	frozen(limiter, time.Unix(1_700_000_000, 0))

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("c", "/burst", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("c", "/burst", "POST")
	assert.False(t, allowed)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/roles", "GET")
	assert.True(t, allowed)
	assert.Equal(t, DefaultConfig().RequestsPerMinute, info.Limit)
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/feedback", Method: "POST", Limit: 60},
		{Path: "/roles/", Method: "GET", Limit: 30},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{"exact", "/feedback", "POST", 60, false},
		{"method mismatch", "/feedback", "GET", 0, true},
		{"prefix", "/roles/frontend-developer", "GET", 30, false},
		{"health unlimited", "/health", "GET", 0, false},
		{"metrics unlimited", "/metrics", "GET", 0, false},
		{"no match", "/hobbies/weak", "POST", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}
