package rule

import "context"

type conditionalRule struct {
	Rule
	cond func(*Context) bool
}

// When gates a rule behind a predicate. While the predicate returns false the
// wrapped rule is never invoked: IsBroken reports false, Evaluate returns no
// Result and Check is a no-op. Side effects inside the wrapped predicate are
// therefore suppressed as long as the condition does not hold.
//
// A nil predicate leaves the rule unconditional.
func When(r Rule, cond func(*Context) bool) Rule {
	return conditionalRule{Rule: r, cond: cond}
}

func (r conditionalRule) IsBroken(rctx *Context) (bool, error) {
	if r.cond != nil && !r.cond(rctx) {
		return false, nil
	}
	return r.Rule.IsBroken(rctx)
}

type asyncConditionalRule struct {
	AsyncRule
	cond func(context.Context, *Context) bool
}

// WhenAsync is the asynchronous counterpart of When.
func WhenAsync(r AsyncRule, cond func(context.Context, *Context) bool) AsyncRule {
	return asyncConditionalRule{AsyncRule: r, cond: cond}
}

func (r asyncConditionalRule) IsBroken(ctx context.Context, rctx *Context) (bool, error) {
	if r.cond != nil && !r.cond(ctx, rctx) {
		return false, nil
	}
	return r.AsyncRule.IsBroken(ctx, rctx)
}
