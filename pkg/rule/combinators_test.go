package rule_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

func countingRule(code string, broken bool, calls *atomic.Int32) rule.Rule {
	return rule.Func(rule.Metadata{Code: code, Message: code + " message"}, func(*rule.Context) (bool, error) {
		calls.Add(1)
		return broken, nil
	})
}

func TestAndOrNotTruthTable(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ b1, b2 bool }{
		{false, false}, {false, true}, {true, false}, {true, true},
	} {
		first, second := stub("A", tc.b1), stub("B", tc.b2)

		andBroken, err := rule.And(first, second).IsBroken(nil)
		require.NoError(t, err)
		assert.Equal(t, tc.b1 && tc.b2, andBroken, "And(%v,%v)", tc.b1, tc.b2)

		orBroken, err := rule.Or(first, second).IsBroken(nil)
		require.NoError(t, err)
		assert.Equal(t, tc.b1 || tc.b2, orBroken, "Or(%v,%v)", tc.b1, tc.b2)

		notBroken, err := rule.Not(first).IsBroken(nil)
		require.NoError(t, err)
		assert.Equal(t, !tc.b1, notBroken, "Not(%v)", tc.b1)
	}
}

func TestAsyncTruthTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for _, tc := range []struct{ b1, b2 bool }{
		{false, false}, {false, true}, {true, false}, {true, true},
	} {
		first, second := stubAsync("A", tc.b1), stubAsync("B", tc.b2)

		andBroken, err := rule.AndAsync(first, second).IsBroken(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.b1 && tc.b2, andBroken)

		orBroken, err := rule.OrAsync(first, second).IsBroken(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.b1 || tc.b2, orBroken)

		notBroken, err := rule.NotAsync(first).IsBroken(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, !tc.b1, notBroken)
	}
}

func TestCombinatorMetadata(t *testing.T) {
	t.Parallel()

	first := rule.Func(rule.Metadata{Code: "A", Message: "first", Severity: rule.SeverityInfo},
		func(*rule.Context) (bool, error) { return true, nil })
	second := rule.Func(rule.Metadata{Code: "B", Message: "second", Severity: rule.SeverityWarning},
		func(*rule.Context) (bool, error) { return true, nil })

	and := rule.And(first, second)
	assert.Equal(t, "A+B", and.Code())
	assert.Equal(t, "first AND second", and.Message())
	assert.Equal(t, rule.SeverityWarning, and.Severity(), "combined severity is the more serious operand")

	or := rule.Or(first, second)
	assert.Equal(t, "A|B", or.Code())
	assert.Equal(t, "first OR second", or.Message())

	not := rule.Not(first)
	assert.Equal(t, "!A", not.Code())
	assert.Equal(t, "NOT: first", not.Message())
	assert.Equal(t, rule.SeverityInfo, not.Severity(), "severity passes through")
}

func TestCombinatorsEvaluateBothOperands(t *testing.T) {
	t.Parallel()

	t.Run("and does not short-circuit", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		r := rule.And(countingRule("A", false, &calls), countingRule("B", true, &calls))

		broken, err := r.IsBroken(nil)
		require.NoError(t, err)
		assert.False(t, broken)
		assert.Equal(t, int32(2), calls.Load(), "both operands evaluated even though the first passed")
	})

	t.Run("or does not short-circuit", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		r := rule.Or(countingRule("A", true, &calls), countingRule("B", false, &calls))

		broken, err := r.IsBroken(nil)
		require.NoError(t, err)
		assert.True(t, broken)
		assert.Equal(t, int32(2), calls.Load(), "both operands evaluated even though the first was broken")
	})
}

func TestCombinatorsCollapseDetail(t *testing.T) {
	t.Parallel()

	// Unlike Composite, a combinator reports one synthetic Result.
	res, err := rule.Evaluate(rule.And(stub("A", true), stub("B", true)), nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "A+B", res.Code)
}

func TestCombinatorErrorPropagation(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := rule.Func(rule.Metadata{Code: "ERR"}, func(*rule.Context) (bool, error) {
		return false, boom
	})

	var calls atomic.Int32
	second := countingRule("B", true, &calls)

	_, err := rule.And(failing, second).IsBroken(nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(0), calls.Load(), "a first-operand fault stops the combinator")

	_, err = rule.Or(failing, second).IsBroken(nil)
	require.ErrorIs(t, err, boom)

	_, err = rule.Not(failing).IsBroken(nil)
	require.ErrorIs(t, err, boom)
}
