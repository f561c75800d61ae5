package checker

import "github.com/dmitrymomot/rulekit/pkg/rule"

// Option configures a single batch check.
type Option func(*options)

type options struct {
	rctx               *rule.Context
	observer           Observer
	stopOnFirstFailure bool
	parallel           bool
}

func newOptions(opts []Option) options {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithContext supplies the evaluation context handed to every rule in the
// batch. Without it rules receive a nil context.
func WithContext(rctx *rule.Context) Option {
	return func(o *options) { o.rctx = rctx }
}

// WithObserver installs an observer whose hooks are invoked around every
// rule evaluation. In parallel mode the hooks may be called from multiple
// goroutines, so the observer must be safe for concurrent use there.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithStopOnFirstFailure makes the check stop right after the first broken
// rule. The resulting ValidationError then carries exactly one Result.
// Fail-fast takes precedence over WithParallel: when both are requested the
// batch runs sequentially with early exit.
func WithStopOnFirstFailure() Option {
	return func(o *options) { o.stopOnFirstFailure = true }
}

// WithParallel evaluates all rules of an asynchronous batch concurrently,
// one goroutine per rule, and gathers the results once every evaluation has
// completed. A failing rule does not cancel its siblings. Ignored by the
// synchronous checker and overridden by WithStopOnFirstFailure.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}
