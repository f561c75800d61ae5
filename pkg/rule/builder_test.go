package rule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("builds a rule with full metadata", func(t *testing.T) {
		t.Parallel()

		r, err := rule.NewBuilder().
			Code("ORD.TOTAL").
			Message("order total invalid").
			Severity(rule.SeverityWarning).
			Name("OrderTotal").
			Description("checks the order total against tenant limits").
			Category("orders").
			Tags("billing", "orders").
			BrokenWhen(func(*rule.Context) (bool, error) { return true, nil }).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "ORD.TOTAL", r.Code())
		assert.Equal(t, "order total invalid", r.Message())
		assert.Equal(t, rule.SeverityWarning, r.Severity())
		assert.Equal(t, "OrderTotal", r.Name())
		assert.Equal(t, "checks the order total against tenant limits", r.Description())
		assert.Equal(t, "orders", r.Category())
		assert.Equal(t, []string{"billing", "orders"}, r.Tags())

		broken, err := r.IsBroken(nil)
		require.NoError(t, err)
		assert.True(t, broken)
	})

	t.Run("missing condition fails at build time", func(t *testing.T) {
		t.Parallel()

		_, err := rule.NewBuilder().Code("NO.COND").Build()
		require.ErrorIs(t, err, rule.ErrMissingCondition)
	})

	t.Run("missing code fails at build time", func(t *testing.T) {
		t.Parallel()

		_, err := rule.NewBuilder().
			BrokenWhen(func(*rule.Context) (bool, error) { return false, nil }).
			Build()
		require.ErrorIs(t, err, rule.ErrMissingCode)
	})

	t.Run("must build panics on invalid builder", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { rule.NewBuilder().MustBuild() })
		assert.Panics(t, func() { rule.NewBuilder().MustBuildAsync() })
	})
}

func TestBuilderAsync(t *testing.T) {
	t.Parallel()

	t.Run("builds from an async predicate", func(t *testing.T) {
		t.Parallel()

		r, err := rule.NewBuilder().
			Code("ASYNC").
			BrokenWhenAsync(func(context.Context, *rule.Context) (bool, error) { return true, nil }).
			BuildAsync()
		require.NoError(t, err)

		broken, err := r.IsBroken(context.Background(), nil)
		require.NoError(t, err)
		assert.True(t, broken)
	})

	t.Run("adapts a sync predicate when no async one is set", func(t *testing.T) {
		t.Parallel()

		r, err := rule.NewBuilder().
			Code("ADAPTED").
			BrokenWhen(func(*rule.Context) (bool, error) { return true, nil }).
			BuildAsync()
		require.NoError(t, err)

		broken, err := r.IsBroken(context.Background(), nil)
		require.NoError(t, err)
		assert.True(t, broken)
	})

	t.Run("missing condition fails", func(t *testing.T) {
		t.Parallel()

		_, err := rule.NewBuilder().Code("NO.COND").BuildAsync()
		require.ErrorIs(t, err, rule.ErrMissingCondition)
	})
}
