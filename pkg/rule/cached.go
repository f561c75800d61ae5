package rule

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// CachedRule memoizes the outcome of a synchronous rule for a fixed TTL.
// While a cached value is fresh the inner rule is not invoked. The
// check-then-set is guarded by a mutex, so concurrent callers never race on
// the cached state. Inner-rule errors are not cached.
type CachedRule struct {
	Rule
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	cached *bool
	expiry time.Time
}

// Cached wraps a rule with a TTL-bound result cache.
func Cached(r Rule, ttl time.Duration) *CachedRule {
	return &CachedRule{Rule: r, ttl: ttl, now: time.Now}
}

func (c *CachedRule) IsBroken(rctx *Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && c.now().Before(c.expiry) {
		return *c.cached, nil
	}

	broken, err := c.Rule.IsBroken(rctx)
	if err != nil {
		return false, err
	}
	c.cached = &broken
	c.expiry = c.now().Add(c.ttl)
	return broken, nil
}

// Invalidate clears the cached value, forcing the next evaluation to invoke
// the inner rule regardless of the TTL.
func (c *CachedRule) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
	c.expiry = time.Time{}
}

// AsyncCachedRule memoizes the outcome of an asynchronous rule for a fixed
// TTL. A binary semaphore ensures that on expiry only one caller recomputes;
// concurrent callers block on the semaphore and then observe the refreshed
// value, so the inner rule is never invoked twice under contention.
type AsyncCachedRule struct {
	AsyncRule
	ttl time.Duration
	now func() time.Time

	sem *semaphore.Weighted

	mu     sync.Mutex
	cached *bool
	expiry time.Time
}

// CachedAsync wraps an asynchronous rule with a TTL-bound result cache.
func CachedAsync(r AsyncRule, ttl time.Duration) *AsyncCachedRule {
	return &AsyncCachedRule{
		AsyncRule: r,
		ttl:       ttl,
		now:       time.Now,
		sem:       semaphore.NewWeighted(1),
	}
}

func (c *AsyncCachedRule) IsBroken(ctx context.Context, rctx *Context) (bool, error) {
	if v, ok := c.load(); ok {
		return v, nil
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer c.sem.Release(1)

	// Another caller may have refreshed the value while we were waiting.
	if v, ok := c.load(); ok {
		return v, nil
	}

	broken, err := c.AsyncRule.IsBroken(ctx, rctx)
	if err != nil {
		return false, err
	}
	c.store(broken)
	return broken, nil
}

// Invalidate clears the cached value, forcing the next evaluation to invoke
// the inner rule regardless of the TTL.
func (c *AsyncCachedRule) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
	c.expiry = time.Time{}
}

func (c *AsyncCachedRule) load() (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached != nil && c.now().Before(c.expiry) {
		return *c.cached, true
	}
	return false, false
}

func (c *AsyncCachedRule) store(broken bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = &broken
	c.expiry = c.now().Add(c.ttl)
}
