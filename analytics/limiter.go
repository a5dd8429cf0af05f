package analytics

import (
	"sync"
	"time"
)

// rateLimiter is a sliding-window limiter keyed by arbitrary strings
// (here: "addr path"). The store uses it to drop repeat views inside the
// dedup window before they ever reach SQLite.
type rateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
	done   chan struct{}
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		done:   make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// stop terminates the cleanup goroutine. The limiter still answers allow
// afterwards; only the background eviction ends.
func (rl *rateLimiter) stop() {
	close(rl.done)
}

// allow reports whether key is still under the limit, and records the hit
// when it is.
func (rl *rateLimiter) allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	kept := rl.expire(key, cutoff)
	if len(kept) >= rl.max {
		return false
	}
	rl.hits[key] = append(kept, now)
	return true
}

// expire drops hits for key older than cutoff and returns the survivors.
// Caller must hold mu.
func (rl *rateLimiter) expire(key string, cutoff time.Time) []time.Time {
	hits := rl.hits[key]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	rl.hits[key] = kept
	return kept
}

// cleanup periodically evicts idle keys so the map doesn't grow without
// bound across a site's whole path space.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-rl.window)
			rl.mu.Lock()
			for key := range rl.hits {
				if len(rl.expire(key, cutoff)) == 0 {
					delete(rl.hits, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
