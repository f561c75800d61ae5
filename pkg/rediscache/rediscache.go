package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

var (
	// ErrNilStore is returned by New when no store is provided.
	ErrNilStore = errors.New("rediscache: store is nil")

	// ErrNilRule is returned by New when no inner rule is provided.
	ErrNilRule = errors.New("rediscache: inner rule is nil")
)

// Store is the narrow persistence surface the cached rule needs. RedisStore
// implements it over go-redis; tests can substitute an in-memory fake.
type Store interface {
	// Get returns the cached broken flag and whether the key was present.
	Get(ctx context.Context, key string) (broken bool, ok bool, err error)
	// Set stores the broken flag under the key with the given TTL.
	Set(ctx context.Context, key string, broken bool, ttl time.Duration) error
	// Delete removes the key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// Rule caches an asynchronous rule's outcome in a shared store so that
// multiple processes evaluating the same expensive rule reuse one result
// until the TTL elapses. It is the distributed sibling of rule.CachedAsync.
//
// Store errors propagate to the caller: an unreachable store aborts the
// evaluation rather than silently re-running the inner rule.
type Rule struct {
	rule.AsyncRule
	store Store
	ttl   time.Duration
	key   string
}

// Option configures a cached rule.
type Option func(*Rule)

// WithKey overrides the cache key, which defaults to "rulecache:" plus the
// inner rule's code. Needed when several rules share a code.
func WithKey(key string) Option {
	return func(r *Rule) { r.key = key }
}

// New wraps an asynchronous rule with a store-backed outcome cache.
func New(store Store, inner rule.AsyncRule, ttl time.Duration, opts ...Option) (*Rule, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if inner == nil {
		return nil, ErrNilRule
	}
	r := &Rule{
		AsyncRule: inner,
		store:     store,
		ttl:       ttl,
		key:       "rulecache:" + inner.Code(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Key returns the cache key in use.
func (r *Rule) Key() string { return r.key }

func (r *Rule) IsBroken(ctx context.Context, rctx *rule.Context) (bool, error) {
	broken, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return false, err
	}
	if ok {
		return broken, nil
	}

	broken, err = r.AsyncRule.IsBroken(ctx, rctx)
	if err != nil {
		return false, err
	}
	if err := r.store.Set(ctx, r.key, broken, r.ttl); err != nil {
		return false, err
	}
	return broken, nil
}

// Invalidate removes the cached outcome, forcing the next evaluation to
// invoke the inner rule.
func (r *Rule) Invalidate(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}
