// Package checker orchestrates batch evaluation of business rules: it runs N
// independent rules, aggregates their violations into a single
// *rule.ValidationError (CheckAll) or a structured Evaluation result
// (EvaluateAll), and supports fail-fast, parallel, filtered, and observed
// runs.
//
// The package is a stateless collection of free functions; every policy is
// selected per call through options.
//
// # Usage
//
//	rctx := rule.NewContext()
//	rule.Set(rctx, "limit", 1000)
//
//	err := checker.CheckAll(rules,
//	    checker.WithContext(rctx),
//	    checker.WithObserver(checker.NewSlogObserver(logger)),
//	)
//	if verr, ok := rule.AsValidationError(err); ok {
//	    // one Result per broken rule, in evaluation order
//	}
//
// Asynchronous batches take a context and may run in parallel:
//
//	err := checker.CheckAllAsync(ctx, asyncRules, checker.WithParallel())
//
// # Evaluation policies
//
//   - Sequential (default): rules run in input order, one at a time, with
//     observer callbacks interleaved deterministically.
//   - Fail-fast (WithStopOnFirstFailure): the batch stops right after the
//     first broken rule; the ValidationError carries exactly one Result.
//   - Parallel (WithParallel, async only): one goroutine per rule, gathered
//     at an all-complete barrier; result order still matches input order.
//     Fail-fast takes precedence over parallel when both are requested —
//     this is a documented precedence rule, not an error.
//
// Filtering helpers (CheckBySeverity, CheckByCategory, CheckByTags) narrow
// the rule slice before delegating to CheckAll; tag matching is
// case-insensitive.
//
// # Error Handling
//
// Three failure modes stay distinct: broken rules surface as a
// *rule.ValidationError; a rule predicate's own error propagates unconverted
// and aborts the batch; context cancellation surfaces as ctx.Err(). The
// checker never salvages partial results after a predicate error.
//
// # Configuration
//
// Config describes env-driven defaults (CHECKER_STOP_ON_FIRST_FAILURE,
// CHECKER_PARALLEL) parsed with caarlos0/env, optionally after loading
// dotenv files; Config.Options bridges to the options API.
package checker
