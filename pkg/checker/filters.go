package checker

import (
	"context"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// filterRules keeps the rules matching the predicate, preserving order. The
// type parameter covers both rule variants through their shared Descriptor.
func filterRules[R rule.Descriptor](rules []R, keep func(rule.Descriptor) bool) []R {
	out := make([]R, 0, len(rules))
	for _, r := range rules {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func severityPredicate(severities []rule.Severity) func(rule.Descriptor) bool {
	set := make(map[rule.Severity]struct{}, len(severities))
	for _, s := range severities {
		set[s] = struct{}{}
	}
	return func(d rule.Descriptor) bool {
		_, ok := set[d.Severity()]
		return ok
	}
}

func categoryPredicate(category string) func(rule.Descriptor) bool {
	return func(d rule.Descriptor) bool {
		return d.Category() == category
	}
}

// tagsPredicate matches rules whose tag set intersects the wanted tags,
// case-insensitively via Unicode case folding. The caser is stateful, so one
// is created per predicate and the predicate must not be shared across
// goroutines; all filters run before any parallel evaluation starts.
func tagsPredicate(tags []string) func(rule.Descriptor) bool {
	caser := cases.Fold()
	want := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		want[caser.String(t)] = struct{}{}
	}
	return func(d rule.Descriptor) bool {
		for _, t := range d.Tags() {
			if _, ok := want[caser.String(t)]; ok {
				return true
			}
		}
		return false
	}
}

// CheckBySeverity checks only the rules whose severity is in the given set.
func CheckBySeverity(rules []rule.Rule, severities []rule.Severity, opts ...Option) error {
	return CheckAll(filterRules(rules, severityPredicate(severities)), opts...)
}

// CheckByCategory checks only the rules with exactly the given category.
func CheckByCategory(rules []rule.Rule, category string, opts ...Option) error {
	return CheckAll(filterRules(rules, categoryPredicate(category)), opts...)
}

// CheckByTags checks only the rules carrying at least one of the given tags.
// Tag comparison is case-insensitive.
func CheckByTags(rules []rule.Rule, tags []string, opts ...Option) error {
	return CheckAll(filterRules(rules, tagsPredicate(tags)), opts...)
}

// CheckBySeverityAsync is the asynchronous counterpart of CheckBySeverity.
func CheckBySeverityAsync(ctx context.Context, rules []rule.AsyncRule, severities []rule.Severity, opts ...Option) error {
	return CheckAllAsync(ctx, filterRules(rules, severityPredicate(severities)), opts...)
}

// CheckByCategoryAsync is the asynchronous counterpart of CheckByCategory.
func CheckByCategoryAsync(ctx context.Context, rules []rule.AsyncRule, category string, opts ...Option) error {
	return CheckAllAsync(ctx, filterRules(rules, categoryPredicate(category)), opts...)
}

// CheckByTagsAsync is the asynchronous counterpart of CheckByTags.
func CheckByTagsAsync(ctx context.Context, rules []rule.AsyncRule, tags []string, opts ...Option) error {
	return CheckAllAsync(ctx, filterRules(rules, tagsPredicate(tags)), opts...)
}
