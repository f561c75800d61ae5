package rule_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

func TestWhen(t *testing.T) {
	t.Parallel()

	t.Run("false condition suppresses the rule entirely", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		r := rule.When(countingRule("GUARDED", true, &calls), func(*rule.Context) bool { return false })

		broken, err := r.IsBroken(nil)
		require.NoError(t, err)
		assert.False(t, broken)
		assert.Equal(t, int32(0), calls.Load(), "wrapped predicate must never run")

		res, err := rule.Evaluate(r, nil)
		require.NoError(t, err)
		assert.Nil(t, res)
		require.NoError(t, rule.Check(r, nil))
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("true condition passes through", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		r := rule.When(countingRule("GUARDED", true, &calls), func(*rule.Context) bool { return true })

		broken, err := r.IsBroken(nil)
		require.NoError(t, err)
		assert.True(t, broken)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("condition can read the context", func(t *testing.T) {
		t.Parallel()

		r := rule.When(stub("PREMIUM.ONLY", true), func(rctx *rule.Context) bool {
			premium, _ := rule.TryGet[bool](rctx, "premium")
			return premium
		})

		rctx := rule.NewContext()
		broken, err := r.IsBroken(rctx)
		require.NoError(t, err)
		assert.False(t, broken)

		rule.Set(rctx, "premium", true)
		broken, err = r.IsBroken(rctx)
		require.NoError(t, err)
		assert.True(t, broken)
	})

	t.Run("metadata passes through", func(t *testing.T) {
		t.Parallel()

		r := rule.When(stub("GUARDED", true), func(*rule.Context) bool { return false })
		assert.Equal(t, "GUARDED", r.Code())
		assert.Equal(t, "GUARDED message", r.Message())
	})
}

func TestWhenAsync(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	inner := rule.AsyncFunc(rule.Metadata{Code: "GUARDED"}, func(context.Context, *rule.Context) (bool, error) {
		calls.Add(1)
		return true, nil
	})

	r := rule.WhenAsync(inner, func(context.Context, *rule.Context) bool { return false })
	broken, err := r.IsBroken(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, broken)
	assert.Equal(t, int32(0), calls.Load())

	r = rule.WhenAsync(inner, func(context.Context, *rule.Context) bool { return true })
	broken, err = r.IsBroken(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, broken)
	assert.Equal(t, int32(1), calls.Load())
}
