package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestWindow_RollCarriesCountForward(t *testing.T) {
	base := time.Now()
	w := &window{start: base, count: 7}

	w.roll(base.Add(90*time.Second), time.Minute)

	if w.prev != 7 {
		t.Errorf("Expected previous count 7 after rolling one interval, got %d", w.prev)
	}
	if w.count != 0 {
		t.Errorf("Expected current count reset to 0, got %d", w.count)
	}
	if !w.start.Equal(base.Add(time.Minute)) {
		t.Errorf("Expected window start to advance one interval, got %v", w.start)
	}
}

func TestWindow_RollDropsStaleHistory(t *testing.T) {
	base := time.Now()
	w := &window{start: base, count: 7, prev: 3}

	now := base.Add(5 * time.Minute)
	w.roll(now, time.Minute)

	if w.prev != 0 || w.count != 0 {
		t.Errorf("Expected counts cleared after idle intervals, got prev=%d count=%d", w.prev, w.count)
	}
	if !w.start.Equal(now) {
		t.Errorf("Expected window restarted at now, got %v", w.start)
	}
}

func TestWindow_LoadWeighsPreviousInterval(t *testing.T) {
	base := time.Now()
	w := &window{start: base, prev: 10, count: 2}

	// Halfway through the interval half of the previous count still overlaps.
	got := w.load(base.Add(30*time.Second), time.Minute)
	if got != 7.0 {
		t.Errorf("Expected weighted load 7.0, got %v", got)
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "203.0.113.7"
	endpoint := "/test"
	method := "GET"

	// The budget counts down request by request.
	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, info.Remaining)
		}
	}

	// The 11th request exceeds the window budget.
	allowed, info := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", info.Remaining)
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected a positive retry-after on denial")
	}
	if !info.ResetTime.After(time.Now()) {
		t.Error("Expected the reset time to lie in the future")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"203.0.113.7": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// A whitelisted client never counts against a budget.
	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("203.0.113.7", "/test", "GET")
		if !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
		if info.Limit != 0 {
			t.Errorf("Expected limit 0 for a whitelisted client, got %d", info.Limit)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.0.2.66": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.0.2.66", "/test", "GET")
	if allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("203.0.113.7", "/test", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
		if info.Limit != 0 {
			t.Errorf("Expected limit 0 when disabled, got %d", info.Limit)
		}
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/v1/analyze", Method: "POST", Limit: 5, Window: time.Hour},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "203.0.113.7"

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow(clientID, "/api/v1/analyze", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 5 {
			t.Errorf("Expected limit 5, got %d", info.Limit)
		}
	}

	allowed, info := limiter.Allow(clientID, "/api/v1/analyze", "POST")
	if allowed {
		t.Error("Expected 6th request to be denied")
	}
	if info.Limit != 5 {
		t.Errorf("Expected limit 5, got %d", info.Limit)
	}

	// Another endpoint runs on the default budget.
	allowed, info = limiter.Allow(clientID, "/other", "GET")
	if !allowed {
		t.Error("Expected a different endpoint to be allowed")
	}
	if info.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", info.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "203.0.113.7"
	endpoint := "/test"
	method := "GET"

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	// 200 concurrent requests against a budget of 100.
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.Allow(clientID, endpoint, method)
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected exactly 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_EvictIdleDropsStaleWindows(t *testing.T) {
	config := &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("203.0.113.7", "/test", "GET"); !allowed {
		t.Fatal("Expected the first request to be allowed")
	}
	if allowed, _ := limiter.Allow("203.0.113.7", "/test", "GET"); allowed {
		t.Fatal("Expected the second request to be denied at limit 1")
	}

	// A cutoff in the future treats every window as idle.
	limiter.evictIdle(time.Now().Add(time.Minute))

	if allowed, _ := limiter.Allow("203.0.113.7", "/test", "GET"); !allowed {
		t.Error("Expected a fresh budget after the window was evicted")
	}
}

func TestLimiter_EvictIdleKeepsRecentWindows(t *testing.T) {
	config := &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	limiter.Allow("203.0.113.7", "/test", "GET")

	// A cutoff in the past evicts nothing.
	limiter.evictIdle(time.Now().Add(-time.Minute))

	if allowed, _ := limiter.Allow("203.0.113.7", "/test", "GET"); allowed {
		t.Error("Expected a live window to keep its count across a sweep")
	}
}

func TestLimiter_SweeperKeepsActiveClients(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 20 * time.Millisecond,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		clientID := fmt.Sprintf("10.0.0.%d", i+1)
		if allowed, _ := limiter.Allow(clientID, "/test", "GET"); !allowed {
			t.Errorf("Expected request from %s to be allowed", clientID)
		}
	}

	// Let the sweeper run; active windows are nowhere near the idle cutoff.
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 3; i++ {
		clientID := fmt.Sprintf("10.0.0.%d", i+1)
		allowed, info := limiter.Allow(clientID, "/test", "GET")
		if !allowed || info.Remaining != 8 {
			t.Errorf("Expected %s to keep its window across sweeps, got remaining %d", clientID, info.Remaining)
		}
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("203.0.113.7", "/test", "GET")
	if !allowed {
		t.Error("Expected request to be allowed under the default config")
	}
	if info.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", info.Limit)
	}
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected health check to match the unlimited config")
	}
	if config.Limit != 0 {
		t.Errorf("Expected unlimited (0) for health check, got %d", config.Limit)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	config := MatchEndpoint("/api/v1/auth/login", "POST", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected login endpoint to match a config")
	}
	if config.Limit != 20 {
		t.Errorf("Expected limit 20 for login, got %d", config.Limit)
	}
	if config.Window != time.Minute {
		t.Errorf("Expected 1-minute window for login, got %v", config.Window)
	}
}

func TestMatchEndpoint_PrefixMatchesSubresources(t *testing.T) {
	// POST to a resume subresource ({id}/analyses) matches the
	// "/api/v1/resumes/" prefix config.
	config := MatchEndpoint("/api/v1/resumes/0c9b3f1e/analyses", "POST", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected resume subresource POST to match the prefix config")
	}
	if config.Path != "/api/v1/resumes/" {
		t.Errorf("Expected prefix config /api/v1/resumes/, got %s", config.Path)
	}
}

func TestMatchEndpoint_CollectionNotCaughtByPrefix(t *testing.T) {
	// POST /api/v1/resumes (no trailing slash) is resume creation, not a
	// subresource; it falls through to the default limit.
	config := MatchEndpoint("/api/v1/resumes", "POST", DefaultEndpointConfigs())
	if config != nil {
		t.Errorf("Expected no match for resume creation, got %+v", config)
	}
}

func TestMatchEndpoint_MethodMustMatch(t *testing.T) {
	// GET on a limited POST-only endpoint uses the default limit.
	config := MatchEndpoint("/api/v1/analyze", "GET", DefaultEndpointConfigs())
	if config != nil {
		t.Errorf("Expected no match for GET on POST-only endpoint, got %+v", config)
	}
}
