package checker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// CheckAllAsync is the asynchronous counterpart of CheckAll.
//
// In sequential mode (the default, and always when fail-fast is requested)
// the context is checked between rules; cancellation surfaces as ctx.Err()
// and is never folded into the ValidationError. With WithParallel every rule
// is evaluated in its own goroutine and results are gathered once all
// evaluations have completed.
func CheckAllAsync(ctx context.Context, rules []rule.AsyncRule, opts ...Option) error {
	ev, err := EvaluateAllAsync(ctx, rules, opts...)
	if err != nil {
		return err
	}
	if ev.HasBrokenRules() {
		return rule.NewValidationError(ev.Broken...)
	}
	return nil
}

// EvaluateAllAsync runs the same evaluation as CheckAllAsync without
// reporting violations through an error.
func EvaluateAllAsync(ctx context.Context, rules []rule.AsyncRule, opts ...Option) (*AsyncEvaluation, error) {
	cfg := newOptions(opts)
	// Fail-fast needs strict ordering, so it wins over parallel.
	if cfg.parallel && !cfg.stopOnFirstFailure {
		return evaluateParallel(ctx, rules, cfg)
	}
	return evaluateSequential(ctx, rules, cfg)
}

func evaluateSequential(ctx context.Context, rules []rule.AsyncRule, cfg options) (*AsyncEvaluation, error) {
	ev := &AsyncEvaluation{}
	for _, r := range rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.observer != nil {
			cfg.observer.BeforeEvaluate(r)
		}

		broken, err := r.IsBroken(ctx, cfg.rctx)
		if err != nil {
			return nil, err
		}

		if broken {
			res := rule.Describe(r)
			ev.Broken = append(ev.Broken, res)
			if cfg.observer != nil {
				cfg.observer.AfterEvaluate(r, &res)
				cfg.observer.OnBroken(r, res)
			}
			if cfg.stopOnFirstFailure {
				break
			}
			continue
		}

		ev.Passed = append(ev.Passed, r)
		if cfg.observer != nil {
			cfg.observer.AfterEvaluate(r, nil)
		}
	}
	return ev, nil
}

func evaluateParallel(ctx context.Context, rules []rule.AsyncRule, cfg options) (*AsyncEvaluation, error) {
	// One slot per rule keeps the gathered order equal to the input order
	// without any coordination between goroutines.
	slots := make([]*rule.Result, len(rules))

	// The group deliberately carries no derived context: a failing rule must
	// not cancel its siblings, and Wait serves as the all-complete barrier.
	// Cancellation of the caller's context stays cooperative inside each rule.
	var g errgroup.Group
	for i, r := range rules {
		g.Go(func() error {
			if cfg.observer != nil {
				cfg.observer.BeforeEvaluate(r)
			}

			broken, err := r.IsBroken(ctx, cfg.rctx)
			if err != nil {
				return err
			}

			if broken {
				res := rule.Describe(r)
				slots[i] = &res
				if cfg.observer != nil {
					cfg.observer.AfterEvaluate(r, &res)
					cfg.observer.OnBroken(r, res)
				}
				return nil
			}

			if cfg.observer != nil {
				cfg.observer.AfterEvaluate(r, nil)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ev := &AsyncEvaluation{}
	for i, res := range slots {
		if res != nil {
			ev.Broken = append(ev.Broken, *res)
			continue
		}
		ev.Passed = append(ev.Passed, rules[i])
	}
	return ev, nil
}
