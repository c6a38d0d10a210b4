// Package ratelimit throttles clients with a sliding-window counter.
//
// Each client and endpoint pair gets a window that tracks the request count
// for the current interval and for the one before it. The effective load is
// the previous count weighted by how much of its interval still overlaps a
// window ending now, plus the current count. Unlike a fixed window, a client
// cannot double its budget by straddling an interval boundary.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Info reports the limiter's view of a client after a call to Allow.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// idleEviction is how long a window may go unused before the sweeper drops it.
const idleEviction = time.Hour

// window holds the counter pair behind the sliding-window estimate for one
// client and endpoint.
type window struct {
	start time.Time // start of the current interval
	count int       // requests seen in the current interval
	prev  int       // requests seen in the interval before it
	seen  time.Time // last request, drives idle eviction
}

// roll advances the window so that now falls inside the current interval.
func (w *window) roll(now time.Time, length time.Duration) {
	elapsed := now.Sub(w.start)
	switch {
	case elapsed < length:
		// still inside the current interval
	case elapsed < 2*length:
		w.prev = w.count
		w.count = 0
		w.start = w.start.Add(length)
	default:
		// idle for at least a full interval, the history no longer overlaps
		w.prev = 0
		w.count = 0
		w.start = now
	}
}

// load returns the weighted request count for a window ending at now.
func (w *window) load(now time.Time, length time.Duration) float64 {
	frac := float64(now.Sub(w.start)) / float64(length)
	return float64(w.prev)*(1-frac) + float64(w.count)
}

// Limiter tracks one sliding window per client and endpoint.
type Limiter struct {
	config *Config

	mu      sync.Mutex
	windows map[string]*window

	stop chan struct{}
}

// NewLimiter creates a limiter from config. A nil config enables limiting
// with the package defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		config:  config,
		windows: make(map[string]*window),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		go l.sweep(config.CleanupInterval, l.stop)
	}

	return l
}

// Allow records a request from clientID against an endpoint and reports
// whether it fits the endpoint's budget. Whitelisted clients bypass the
// count entirely and blacklisted clients are always denied.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}
	if l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	cfg := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if cfg == nil {
		cfg = &EndpointConfig{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	}
	if cfg.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := time.Now()
	key := clientID + ":" + method + ":" + endpoint

	l.mu.Lock()
	w, ok := l.windows[key]
	if !ok {
		w = &window{start: now}
		l.windows[key] = w
	}
	w.seen = now
	w.roll(now, cfg.Window)

	used := w.load(now, cfg.Window)
	allowed := used < float64(cfg.Limit)
	if allowed {
		w.count++
		used++
	}
	reset := w.start.Add(cfg.Window)
	l.mu.Unlock()

	remaining := cfg.Limit - int(math.Ceil(used))
	if remaining < 0 {
		remaining = 0
	}
	info := Info{
		Allowed:   allowed,
		Limit:     cfg.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		info.RetryAfter = reset.Sub(now)
	}
	return allowed, info
}

// sweep periodically drops windows that have gone idle so the map does not
// keep an entry for every client ever seen.
func (l *Limiter) sweep(every time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle(time.Now().Add(-idleEviction))
		case <-stop:
			return
		}
	}
}

// evictIdle removes windows whose last request predates the cutoff.
func (l *Limiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, w := range l.windows {
		if w.seen.Before(cutoff) {
			delete(l.windows, key)
		}
	}
}

// Stop ends the background sweeper. The limiter itself keeps working.
func (l *Limiter) Stop() {
	if l.stop != nil {
		close(l.stop)
	}
}
