package rule

import "context"

type asyncAdapter struct {
	Rule
}

// AsAsync presents a synchronous rule as an AsyncRule. Every call delegates
// directly to the wrapped rule and completes without suspending; the context
// is ignored.
func AsAsync(r Rule) AsyncRule {
	return asyncAdapter{Rule: r}
}

func (a asyncAdapter) IsBroken(_ context.Context, rctx *Context) (bool, error) {
	return a.Rule.IsBroken(rctx)
}

type blockingRule struct {
	AsyncRule
}

// Blocking presents an asynchronous rule as a synchronous Rule by blocking
// the calling goroutine until the async evaluation completes.
//
// This is an escape hatch, not a default: the evaluation runs under
// context.Background(), so the caller's cancellation never reaches the inner
// rule, and a rule that waits on work the calling goroutine was supposed to
// perform will block forever. Prefer keeping the call chain asynchronous and
// reach for Blocking only at boundaries that cannot be made async.
func Blocking(r AsyncRule) Rule {
	return blockingRule{AsyncRule: r}
}

func (b blockingRule) IsBroken(rctx *Context) (bool, error) {
	return b.AsyncRule.IsBroken(context.Background(), rctx)
}
