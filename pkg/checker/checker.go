package checker

import "github.com/dmitrymomot/rulekit/pkg/rule"

// CheckAll evaluates the rules in input order and returns a
// *rule.ValidationError carrying every gathered violation, or nil when all
// rules pass. An empty rule slice passes trivially.
//
// A non-nil error from a rule's predicate propagates immediately and
// unconverted; rules after it are never evaluated.
func CheckAll(rules []rule.Rule, opts ...Option) error {
	cfg := newOptions(opts)
	ev, err := evaluateSync(rules, cfg)
	if err != nil {
		return err
	}
	if len(ev.Broken) > 0 {
		return rule.NewValidationError(ev.Broken...)
	}
	return nil
}

// EvaluateAll runs the same iteration as CheckAll but never reports
// violations through an error: it returns the broken Results together with
// the rules that passed.
func EvaluateAll(rules []rule.Rule, opts ...Option) (*Evaluation, error) {
	cfg := newOptions(opts)
	return evaluateSync(rules, cfg)
}

func evaluateSync(rules []rule.Rule, cfg options) (*Evaluation, error) {
	ev := &Evaluation{}
	for _, r := range rules {
		if cfg.observer != nil {
			cfg.observer.BeforeEvaluate(r)
		}

		broken, err := r.IsBroken(cfg.rctx)
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
