// Package ruletest provides assertion helpers for testing business rules.
//
// The Assert* helpers fail the test through the minimal TestingT interface,
// which *testing.T satisfies. The lower-case variants (Broken, Passed, ...)
// return an *AssertionError instead, for table-driven setups that want to
// inspect the failure. AssertionError is distinct from the production
// *rule.ValidationError and is never produced outside this package.
//
// # Usage
//
//	func TestLimitRule(t *testing.T) {
//	    rctx := rule.NewContext()
//	    rule.Set(rctx, "limit", 1000)
//	    rule.Set(rctx, "amount", 1500)
//
//	    ruletest.AssertBroken(t, limitRule, rctx)
//	    ruletest.AssertViolation(t, rule.Check(limitRule, rctx), "LIMIT.EXCEEDED")
//	}
package ruletest
