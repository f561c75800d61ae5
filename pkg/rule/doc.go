// Package rule provides the building blocks for encapsulating business
// invariants as composable, evaluable units.
//
// A rule pairs a broken-condition predicate with identity metadata (code,
// message, severity, name, description, category, tags). Rules come in two
// variants sharing the same metadata surface: the synchronous Rule and the
// context-aware AsyncRule. Rules can be written as dedicated types embedding
// Base, produced from closures with Func/AsyncFunc, or assembled with the
// fluent Builder.
//
// On top of single rules, the package offers:
//
//   - Logical combinators And, Or and Not that derive a new rule from one or
//     two existing ones. Combinators collapse their operands into a single
//     synthetic Result; per-operand detail is intentionally lost.
//   - The When conditional wrapper, which short-circuits: while its predicate
//     is false the wrapped rule is never invoked.
//   - Cached/CachedAsync TTL wrappers that memoize a rule's outcome, with
//     mutex respectively binary-semaphore protection against duplicate
//     recomputation under contention.
//   - The AsAsync and Blocking adapters bridging the two variants.
//   - Composite, which aggregates many rules and, unlike the combinators,
//     preserves one Result per broken child.
//
// # Usage
//
//	limit := rule.NewBuilder().
//	    Code("LIMIT.EXCEEDED").
//	    Message("amount exceeds the configured limit").
//	    BrokenWhen(func(rctx *rule.Context) (bool, error) {
//	        return rule.MustGet[int](rctx, "amount") > rule.MustGet[int](rctx, "limit"), nil
//	    }).
//	    MustBuild()
//
//	rctx := rule.NewContext()
//	rule.Set(rctx, "limit", 1000)
//	rule.Set(rctx, "amount", 1500)
//
//	if err := rule.Check(limit, rctx); err != nil {
//	    verr, _ := rule.AsValidationError(err)
//	    // verr.Violations[0].Code == "LIMIT.EXCEEDED"
//	}
//
// # Error Handling
//
// A broken rule is not an error: evaluation helpers report it through a
// *Result or a *ValidationError. A non-nil error from IsBroken means the
// predicate itself failed (nil dependency, I/O fault, ...) and aborts the
// evaluation in progress; the library never converts such errors into
// violations.
//
// # Concurrency
//
// Context storage is internally synchronized and the wrappers guard their own
// state, so rules and contexts may be shared across goroutines. The rules a
// caller writes remain responsible for their own captured dependencies.
package rule
