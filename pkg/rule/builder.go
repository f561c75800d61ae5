package rule

import (
	"context"
	"fmt"
)

// Builder assembles a rule from a predicate closure plus metadata with a
// fluent API. Missing required pieces are reported when Build is invoked,
// never deferred to evaluation time.
//
//	r, err := rule.NewBuilder().
//	    Code("LIMIT.EXCEEDED").
//	    Message("amount exceeds the configured limit").
//	    Severity(rule.SeverityError).
//	    Tags("payments").
//	    BrokenWhen(func(rctx *rule.Context) (bool, error) {
//	        amount := rule.MustGet[int](rctx, "amount")
//	        limit := rule.MustGet[int](rctx, "limit")
//	        return amount > limit, nil
//	    }).
//	    Build()
type Builder struct {
	meta    Metadata
	fn      func(*Context) (bool, error)
	asyncFn func(context.Context, *Context) (bool, error)
}

// NewBuilder creates an empty rule builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Code sets the stable rule identifier. Required.
func (b *Builder) Code(code string) *Builder {
	b.meta.Code = code
	return b
}

// Message sets the human-readable violation text.
func (b *Builder) Message(message string) *Builder {
	b.meta.Message = message
	return b
}

// Severity sets the violation severity. Defaults to SeverityError.
func (b *Builder) Severity(s Severity) *Builder {
	b.meta.Severity = s
	return b
}

// Name sets the display name. Defaults to the rule code.
func (b *Builder) Name(name string) *Builder {
	b.meta.Name = name
	return b
}

// Description sets the optional long description.
func (b *Builder) Description(description string) *Builder {
	b.meta.Description = description
	return b
}

// Category sets the optional category label.
func (b *Builder) Category(category string) *Builder {
	b.meta.Category = category
	return b
}

// Tags sets the tag list used for filtering.
func (b *Builder) Tags(tags ...string) *Builder {
	b.meta.Tags = tags
	return b
}

// BrokenWhen sets the synchronous broken-condition predicate. Required for
// Build.
func (b *Builder) BrokenWhen(fn func(*Context) (bool, error)) *Builder {
	b.fn = fn
	return b
}

// BrokenWhenAsync sets the asynchronous broken-condition predicate.
func (b *Builder) BrokenWhenAsync(fn func(context.Context, *Context) (bool, error)) *Builder {
	b.asyncFn = fn
	return b
}

// Build produces a synchronous rule. It fails with ErrMissingCode when no
// code was set and ErrMissingCondition when no BrokenWhen predicate was
// supplied.
func (b *Builder) Build() (Rule, error) {
	if b.meta.Code == "" {
		return nil, ErrMissingCode
	}
	if b.fn == nil {
		return nil, ErrMissingCondition
	}
	return Func(b.meta, b.fn), nil
}

// MustBuild is the panicking twin of Build for rules constructed at program
// start.
func (b *Builder) MustBuild() Rule {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("rule: build failed: %v", err))
	}
	return r
}

// BuildAsync produces an asynchronous rule. When only a synchronous
// predicate was supplied it is adapted with AsAsync; with neither predicate
// it fails with ErrMissingCondition.
func (b *Builder) BuildAsync() (AsyncRule, error) {
	if b.meta.Code == "" {
		return nil, ErrMissingCode
	}
	if b.asyncFn != nil {
		return AsyncFunc(b.meta, b.asyncFn), nil
	}
	if b.fn != nil {
		return AsAsync(Func(b.meta, b.fn)), nil
	}
	return nil, ErrMissingCondition
}

// MustBuildAsync is the panicking twin of BuildAsync.
func (b *Builder) MustBuildAsync() AsyncRule {
	r, err := b.BuildAsync()
	if err != nil {
		panic(fmt.Sprintf("rule: build failed: %v", err))
	}
	return r
}
