package ruletest

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// TestingT is the minimal testing surface the assertion helpers need.
// *testing.T satisfies it.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// AssertionError reports a rule whose evaluation did not match the asserted
// expectation. It is produced only by this package, never by production
// evaluation paths.
type AssertionError struct {
	Rule string
	Want bool
	Got  bool
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("rule %q: expected %s, got %s", e.Rule, state(e.Want), state(e.Got))
}

func state(broken bool) string {
	if broken {
		return "broken"
	}
	return "passed"
}

// Broken evaluates the rule and returns an *AssertionError when it is not
// broken. Predicate errors are returned as-is.
func Broken(r rule.Rule, rctx *rule.Context) error {
	broken, err := r.IsBroken(rctx)
	if err != nil {
		return err
	}
	if !broken {
		return &AssertionError{Rule: r.Code(), Want: true, Got: false}
	}
	return nil
}

// Passed evaluates the rule and returns an *AssertionError when it is broken.
func Passed(r rule.Rule, rctx *rule.Context) error {
	broken, err := r.IsBroken(rctx)
	if err != nil {
		return err
	}
	if broken {
		return &AssertionError{Rule: r.Code(), Want: false, Got: true}
	}
	return nil
}

// BrokenAsync is the asynchronous counterpart of Broken.
func BrokenAsync(ctx context.Context, r rule.AsyncRule, rctx *rule.Context) error {
	broken, err := r.IsBroken(ctx, rctx)
	if err != nil {
		return err
	}
	if !broken {
		return &AssertionError{Rule: r.Code(), Want: true, Got: false}
	}
	return nil
}

// PassedAsync is the asynchronous counterpart of Passed.
func PassedAsync(ctx context.Context, r rule.AsyncRule, rctx *rule.Context) error {
	broken, err := r.IsBroken(ctx, rctx)
	if err != nil {
		return err
	}
	if broken {
		return &AssertionError{Rule: r.Code(), Want: false, Got: true}
	}
	return nil
}

// AssertBroken fails the test when the rule is not broken.
func AssertBroken(t TestingT, r rule.Rule, rctx *rule.Context) {
	t.Helper()
	if err := Broken(r, rctx); err != nil {
		t.Fatalf("%v", err)
	}
}

// AssertPassed fails the test when the rule is broken.
func AssertPassed(t TestingT, r rule.Rule, rctx *rule.Context) {
	t.Helper()
	if err := Passed(r, rctx); err != nil {
		t.Fatalf("%v", err)
	}
}

// AssertBrokenAsync fails the test when the asynchronous rule is not broken.
func AssertBrokenAsync(t TestingT, ctx context.Context, r rule.AsyncRule, rctx *rule.Context) {
	t.Helper()
	if err := BrokenAsync(ctx, r, rctx); err != nil {
		t.Fatalf("%v", err)
	}
}

// AssertPassedAsync fails the test when the asynchronous rule is broken.
func AssertPassedAsync(t TestingT, ctx context.Context, r rule.AsyncRule, rctx *rule.Context) {
	t.Helper()
	if err := PassedAsync(ctx, r, rctx); err != nil {
		t.Fatalf("%v", err)
	}
}

// AssertViolation fails the test unless err is a validation error containing
// a violation with the given code.
func AssertViolation(t TestingT, err error, code string) {
	t.Helper()
	verr, ok := rule.AsValidationError(err)
	if !ok {
		t.Fatalf("expected a validation error, got %v", err)
		return
	}
	for _, v := range verr.Violations {
		if v.Code == code {
			return
		}
	}
	t.Fatalf("validation error does not contain code %q: %v", code, err)
}
