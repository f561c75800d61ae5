package rule

import "context"

// pair supplies the combined metadata for two-operand combinators. The code
// joins the operand codes with the combinator's separator, the message joins
// the operand messages with its operator word, and the severity is the more
// serious of the two.
type pair struct {
	first, second Descriptor
	sep           string
	op            string
	name          string
}

func (p pair) Code() string    { return p.first.Code() + p.sep + p.second.Code() }
func (p pair) Message() string { return p.first.Message() + " " + p.op + " " + p.second.Message() }
func (p pair) Severity() Severity {
	return moreSevere(p.first.Severity(), p.second.Severity())
}
func (p pair) Name() string        { return p.name }
func (p pair) Description() string { return "" }
func (p pair) Category() string    { return "" }
func (p pair) Tags() []string      { return nil }

type andRule struct {
	pair
	first, second Rule
}

// And combines two rules into one that is broken only when BOTH operands are
// broken. Both operands are always evaluated, even when the first already
// passed; only a single synthetic Result survives, so per-operand detail is
// lost. Use Composite when individual Results matter.
func And(first, second Rule) Rule {
	return andRule{
		pair:   pair{first: first, second: second, sep: "+", op: "AND", name: "And"},
		first:  first,
		second: second,
	}
}

func (r andRule) IsBroken(rctx *Context) (bool, error) {
	b1, err := r.first.IsBroken(rctx)
	if err != nil {
		return false, err
	}
	b2, err := r.second.IsBroken(rctx)
	if err != nil {
		return false, err
	}
	return b1 && b2, nil
}

type orRule struct {
	pair
	first, second Rule
}

// Or combines two rules into one that is broken when EITHER operand is
// broken. Both operands are always evaluated.
func Or(first, second Rule) Rule {
	return orRule{
		pair:   pair{first: first, second: second, sep: "|", op: "OR", name: "Or"},
		first:  first,
		second: second,
	}
}

func (r orRule) IsBroken(rctx *Context) (bool, error) {
	b1, err := r.first.IsBroken(rctx)
	if err != nil {
		return false, err
	}
	b2, err := r.second.IsBroken(rctx)
	if err != nil {
		return false, err
	}
	return b1 || b2, nil
}

type notRule struct {
	inner Rule
}

// Not inverts a rule: the result is broken exactly when the wrapped rule is
// not. Severity, category and tags pass through unchanged.
func Not(r Rule) Rule {
	return notRule{inner: r}
}

func (r notRule) Code() string        { return "!" + r.inner.Code() }
func (r notRule) Message() string     { return "NOT: " + r.inner.Message() }
func (r notRule) Severity() Severity  { return r.inner.Severity() }
func (r notRule) Name() string        { return "Not" }
func (r notRule) Description() string { return r.inner.Description() }
func (r notRule) Category() string    { return r.inner.Category() }
func (r notRule) Tags() []string      { return r.inner.Tags() }

func (r notRule) IsBroken(rctx *Context) (bool, error) {
	broken, err := r.inner.IsBroken(rctx)
	if err != nil {
		return false, err
	}
	return !broken, nil
}

type asyncAndRule struct {
	pair
	first, second AsyncRule
}

// AndAsync is the asynchronous counterpart of And. The operands are evaluated
// sequentially; when they share a Context the ordering of their side effects
// is not part of the contract.
func AndAsync(first, second AsyncRule) AsyncRule {
	return asyncAndRule{
		pair:   pair{first: first, second: second, sep: "+", op: "AND", name: "And"},
		first:  first,
		second: second,
	}
}

func (r asyncAndRule) IsBroken(ctx context.Context, rctx *Context) (bool, error) {
	b1, err := r.first.IsBroken(ctx, rctx)
	if err != nil {
		return false, err
	}
	b2, err := r.second.IsBroken(ctx, rctx)
	if err != nil {
		return false, err
	}
	return b1 && b2, nil
}

type asyncOrRule struct {
	pair
	first, second AsyncRule
}

// OrAsync is the asynchronous counterpart of Or.
func OrAsync(first, second AsyncRule) AsyncRule {
	return asyncOrRule{
		pair:   pair{first: first, second: second, sep: "|", op: "OR", name: "Or"},
		first:  first,
		second: second,
	}
}

func (r asyncOrRule) IsBroken(ctx context.Context, rctx *Context) (bool, error) {
	b1, err := r.first.IsBroken(ctx, rctx)
	if err != nil {
		return false, err
	}
	b2, err := r.second.IsBroken(ctx, rctx)
	if err != nil {
		return false, err
	}
	return b1 || b2, nil
}

type asyncNotRule struct {
	inner AsyncRule
}

// NotAsync is the asynchronous counterpart of Not.
func NotAsync(r AsyncRule) AsyncRule {
	return asyncNotRule{inner: r}
}

func (r asyncNotRule) Code() string        { return "!" + r.inner.Code() }
func (r asyncNotRule) Message() string     { return "NOT: " + r.inner.Message() }
func (r asyncNotRule) Severity() Severity  { return r.inner.Severity() }
func (r asyncNotRule) Name() string        { return "Not" }
func (r asyncNotRule) Description() string { return r.inner.Description() }
func (r asyncNotRule) Category() string    { return r.inner.Category() }
func (r asyncNotRule) Tags() []string      { return r.inner.Tags() }

func (r asyncNotRule) IsBroken(ctx context.Context, rctx *Context) (bool, error) {
	broken, err := r.inner.IsBroken(ctx, rctx)
	if err != nil {
		return false, err
	}
	return !broken, nil
}
