package rule

import "context"

// Evaluate runs the rule and returns its Result when broken, nil otherwise.
// This is the canonical way to obtain code, message and severity without
// repeating the broken check.
func Evaluate(r Rule, rctx *Context) (*Result, error) {
	broken, err := r.IsBroken(rctx)
	if err != nil {
		return nil, err
	}
	if !broken {
		return nil, nil
	}
	res := Describe(r)
	return &res, nil
}

// Check evaluates the rule and returns a ValidationError carrying a single
// Result when the rule is broken, nil otherwise.
func Check(r Rule, rctx *Context) error {
	res, err := Evaluate(r, rctx)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}
	return NewValidationError(*res)
}

// EvaluateAsync is the asynchronous counterpart of Evaluate.
func EvaluateAsync(ctx context.Context, r AsyncRule, rctx *Context) (*Result, error) {
	broken, err := r.IsBroken(ctx, rctx)
	if err != nil {
		return nil, err
	}
	if !broken {
		return nil, nil
	}
	res := Describe(r)
	return &res, nil
}

// CheckAsync is the asynchronous counterpart of Check.
func CheckAsync(ctx context.Context, r AsyncRule, rctx *Context) error {
	res, err := EvaluateAsync(ctx, r, rctx)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}
	return NewValidationError(*res)
}
