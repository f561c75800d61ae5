package rule

import (
	"context"
	"slices"
)

// Fixed metadata for composites; a composite's identity is never derived
// from its children.
const (
	compositeCode    = "CompositeRule"
	compositeMessage = "one or more rules are broken"
)

// Composite aggregates an ordered list of rules under one evaluable façade.
// Unlike the And/Or combinators it preserves per-child detail: EvaluateAll
// returns one Result per broken child and Check collects ALL broken children
// into a single ValidationError instead of failing fast.
type Composite struct {
	rules []Rule
}

// NewComposite creates a composite over the given rules. The child order is
// the evaluation and reporting order.
func NewComposite(rules ...Rule) *Composite {
	return &Composite{rules: slices.Clone(rules)}
}

// Add appends rules to the composite and returns it for chaining.
func (c *Composite) Add(rules ...Rule) *Composite {
	c.rules = append(c.rules, rules...)
	return c
}

// Rules returns the child rules in evaluation order.
func (c *Composite) Rules() []Rule { return slices.Clone(c.rules) }

func (c *Composite) Code() string        { return compositeCode }
func (c *Composite) Message() string     { return compositeMessage }
func (c *Composite) Severity() Severity  { return SeverityError }
func (c *Composite) Name() string        { return "Composite" }
func (c *Composite) Description() string { return "" }
func (c *Composite) Category() string    { return "" }
func (c *Composite) Tags() []string      { return nil }

// IsBroken reports whether ANY child is broken. Evaluation stops at the
// first broken child since only the boolean answer is needed here.
func (c *Composite) IsBroken(rctx *Context) (bool, error) {
	for _, r := range c.rules {
		broken, err := r.IsBroken(rctx)
		if err != nil {
			return false, err
		}
		if broken {
			return true, nil
		}
	}
	return false, nil
}

// EvaluateAll evaluates every child and returns the Results of the broken
// ones in child order.
func (c *Composite) EvaluateAll(rctx *Context) ([]Result, error) {
	var broken []Result
	for _, r := range c.rules {
		res, err := Evaluate(r, rctx)
		if err != nil {
			return nil, err
		}
		if res != nil {
			broken = append(broken, *res)
		}
	}
	return broken, nil
}

// Check evaluates every child and returns a ValidationError carrying all
// broken children's Results, or nil when none are broken.
func (c *Composite) Check(rctx *Context) error {
	broken, err := c.EvaluateAll(rctx)
	if err != nil {
		return err
	}
	if len(broken) == 0 {
		return nil
	}
	return NewValidationError(broken...)
}

// AsyncComposite is the asynchronous counterpart of Composite.
type AsyncComposite struct {
	rules []AsyncRule
}

// NewAsyncComposite creates a composite over the given asynchronous rules.
func NewAsyncComposite(rules ...AsyncRule) *AsyncComposite {
	return &AsyncComposite{rules: slices.Clone(rules)}
}

// Add appends rules to the composite and returns it for chaining.
func (c *AsyncComposite) Add(rules ...AsyncRule) *AsyncComposite {
	c.rules = append(c.rules, rules...)
	return c
}

// Rules returns the child rules in evaluation order.
func (c *AsyncComposite) Rules() []AsyncRule { return slices.Clone(c.rules) }

func (c *AsyncComposite) Code() string        { return compositeCode }
func (c *AsyncComposite) Message() string     { return compositeMessage }
func (c *AsyncComposite) Severity() Severity  { return SeverityError }
func (c *AsyncComposite) Name() string        { return "Composite" }
func (c *AsyncComposite) Description() string { return "" }
func (c *AsyncComposite) Category() string    { return "" }
func (c *AsyncComposite) Tags() []string      { return nil }

// IsBroken reports whether ANY child is broken, stopping at the first.
func (c *AsyncComposite) IsBroken(ctx context.Context, rctx *Context) (bool, error) {
	for _, r := range c.rules {
		broken, err := r.IsBroken(ctx, rctx)
		if err != nil {
			return false, err
		}
		if broken {
			return true, nil
		}
	}
	return false, nil
}

// EvaluateAll evaluates every child and returns the Results of the broken
// ones in child order.
func (c *AsyncComposite) EvaluateAll(ctx context.Context, rctx *Context) ([]Result, error) {
	var broken []Result
	for _, r := range c.rules {
		res, err := EvaluateAsync(ctx, r, rctx)
		if err != nil {
			return nil, err
		}
		if res != nil {
			broken = append(broken, *res)
		}
	}
	return broken, nil
}

// Check evaluates every child and returns a ValidationError carrying all
// broken children's Results, or nil when none are broken.
func (c *AsyncComposite) Check(ctx context.Context, rctx *Context) error {
	broken, err := c.EvaluateAll(ctx, rctx)
	if err != nil {
		return err
	}
	if len(broken) == 0 {
		return nil
	}
	return NewValidationError(broken...)
}
