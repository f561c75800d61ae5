package checker

import "github.com/dmitrymomot/rulekit/pkg/rule"

// Evaluation is the non-throwing outcome of a synchronous batch: the broken
// Results and the rules that passed, both in evaluation order. Passed holds
// the caller's rule references, not copies.
type Evaluation struct {
	Broken []rule.Result
	Passed []rule.Rule
}

// HasBrokenRules reports whether at least one rule was broken.
func (e *Evaluation) HasBrokenRules() bool { return len(e.Broken) > 0 }

// AllPassed reports whether no rule was broken.
func (e *Evaluation) AllPassed() bool { return len(e.Broken) == 0 }

// BrokenBySeverity returns the broken Results carrying the given severity.
func (e *Evaluation) BrokenBySeverity(s rule.Severity) []rule.Result {
	var out []rule.Result
	for _, res := range e.Broken {
		if res.Severity == s {
			out = append(out, res)
		}
	}
	return out
}

// AsyncEvaluation is the non-throwing outcome of an asynchronous batch.
type AsyncEvaluation struct {
	Broken []rule.Result
	Passed []rule.AsyncRule
}

// HasBrokenRules reports whether at least one rule was broken.
func (e *AsyncEvaluation) HasBrokenRules() bool { return len(e.Broken) > 0 }

// AllPassed reports whether no rule was broken.
func (e *AsyncEvaluation) AllPassed() bool { return len(e.Broken) == 0 }

// BrokenBySeverity returns the broken Results carrying the given severity.
func (e *AsyncEvaluation) BrokenBySeverity(s rule.Severity) []rule.Result {
	var out []rule.Result
	for _, res := range e.Broken {
		if res.Severity == s {
			out = append(out, res)
		}
	}
	return out
}
