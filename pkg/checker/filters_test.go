package checker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/checker"
	"github.com/dmitrymomot/rulekit/pkg/rule"
)

func taggedRule(code string, severity rule.Severity, category string, tags ...string) rule.Rule {
	return rule.Func(rule.Metadata{
		Code:     code,
		Message:  code + " message",
		Severity: severity,
		Category: category,
		Tags:     tags,
	}, func(*rule.Context) (bool, error) { return true, nil })
}

func TestCheckBySeverity(t *testing.T) {
	t.Parallel()

	rules := []rule.Rule{
		taggedRule("E", rule.SeverityError, ""),
		taggedRule("W", rule.SeverityWarning, ""),
		taggedRule("I", rule.SeverityInfo, ""),
	}

	t.Run("only matching severities are checked", func(t *testing.T) {
		t.Parallel()

		err := checker.CheckBySeverity(rules, []rule.Severity{rule.SeverityWarning})

		verr, ok := rule.AsValidationError(err)
		require.True(t, ok)
		require.Len(t, verr.Violations, 1)
		assert.Equal(t, "W", verr.Violations[0].Code)
	})

	t.Run("set membership", func(t *testing.T) {
		t.Parallel()

		err := checker.CheckBySeverity(rules, []rule.Severity{rule.SeverityWarning, rule.SeverityInfo})

		verr, ok := rule.AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, verr.Violations, 2)
	})

	t.Run("no match passes", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, checker.CheckBySeverity(rules[:1], []rule.Severity{rule.SeverityInfo}))
	})
}

func TestCheckByCategory(t *testing.T) {
	t.Parallel()

	rules := []rule.Rule{
		taggedRule("A", rule.SeverityError, "billing"),
		taggedRule("B", rule.SeverityError, "Billing"),
		taggedRule("C", rule.SeverityError, "orders"),
	}

	err := checker.CheckByCategory(rules, "billing")

	verr, ok := rule.AsValidationError(err)
	require.True(t, ok)
	require.Len(t, verr.Violations, 1, "category match is exact, case included")
	assert.Equal(t, "A", verr.Violations[0].Code)
}

func TestCheckByTags(t *testing.T) {
	t.Parallel()

	rules := []rule.Rule{
		taggedRule("A", rule.SeverityError, "", "Billing", "core"),
		taggedRule("B", rule.SeverityError, "", "orders"),
		taggedRule("C", rule.SeverityError, "", "BILLING"),
	}

	t.Run("tag match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		err := checker.CheckByTags(rules, []string{"billing"})

		verr, ok := rule.AsValidationError(err)
		require.True(t, ok)
		require.Len(t, verr.Violations, 2)
		assert.Equal(t, "A", verr.Violations[0].Code)
		assert.Equal(t, "C", verr.Violations[1].Code)
	})

	t.Run("intersection over several tags", func(t *testing.T) {
		t.Parallel()

		err := checker.CheckByTags(rules, []string{"CORE", "Orders"})

		verr, ok := rule.AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, verr.Violations, 2)
	})

	t.Run("untagged rules never match", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, checker.CheckByTags([]rule.Rule{taggedRule("D", rule.SeverityError, "")}, []string{"billing"}))
	})
}

func TestAsyncFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mk := func(code string, severity rule.Severity, category string, tags ...string) rule.AsyncRule {
		return rule.AsAsync(taggedRule(code, severity, category, tags...))
	}
	rules := []rule.AsyncRule{
		mk("E", rule.SeverityError, "billing", "Billing"),
		mk("W", rule.SeverityWarning, "orders", "orders"),
	}

	err := checker.CheckBySeverityAsync(ctx, rules, []rule.Severity{rule.SeverityWarning})
	verr, ok := rule.AsValidationError(err)
	require.True(t, ok)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "W", verr.Violations[0].Code)

	err = checker.CheckByCategoryAsync(ctx, rules, "billing")
	verr, ok = rule.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "E", verr.Violations[0].Code)

	err = checker.CheckByTagsAsync(ctx, rules, []string{"billing"})
	verr, ok = rule.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "E", verr.Violations[0].Code)
}
