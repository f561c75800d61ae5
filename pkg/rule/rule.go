package rule

import "context"

// Descriptor exposes the identity and metadata of a rule without prescribing
// how the rule is evaluated. Both the synchronous and the asynchronous rule
// variants share it, which lets batch checkers, observers, and filters treat
// the two uniformly.
type Descriptor interface {
	// Code returns the stable, caller-defined identifier of the rule.
	// Codes are non-empty but not guaranteed unique; combinators derive
	// their codes by concatenating operand codes with "+", "|" or "!".
	Code() string
	// Message returns the human-readable violation text.
	Message() string
	// Severity returns the severity attached to a violation of this rule.
	Severity() Severity
	// Name returns a short display name for the rule.
	Name() string
	// Description returns an optional longer explanation of the rule.
	Description() string
	// Category returns an optional grouping label used for filtering.
	Category() string
	// Tags returns the ordered tag list used for filtering. Tag matching
	// is case-insensitive on the checker side.
	Tags() []string
}

// Rule is the synchronous variant of a business rule: a named predicate that
// reports whether the invariant it guards is violated.
//
// IsBroken must be a pure function of the rule's captured state and the given
// context; callers may invoke it repeatedly. The returned error is not a
// violation — it signals that the predicate itself could not run and aborts
// whatever evaluation is in progress.
type Rule interface {
	Descriptor
	IsBroken(rctx *Context) (bool, error)
}

// AsyncRule is the asynchronous variant of a business rule. Implementations
// may suspend at I/O boundaries and are expected to honour ctx cooperatively.
type AsyncRule interface {
	Descriptor
	IsBroken(ctx context.Context, rctx *Context) (bool, error)
}

// Metadata carries the descriptive fields of a rule. Only Code and Message
// are required; zero values for the rest fall back to sensible defaults
// (Severity defaults to SeverityError, Name to Code).
type Metadata struct {
	Code        string
	Message     string
	Severity    Severity
	Name        string
	Description string
	Category    string
	Tags        []string
}

// Base supplies the full Descriptor surface from a Metadata value. Rule
// authors embed it in their own types and implement only IsBroken:
//
//	type minBalance struct {
//	    rule.Base
//	    min int
//	}
//
//	func (r minBalance) IsBroken(rctx *rule.Context) (bool, error) { ... }
type Base struct {
	Meta Metadata
}

// NewBase creates a Base with the two required metadata fields set.
func NewBase(code, message string) Base {
	return Base{Meta: Metadata{Code: code, Message: message}}
}

func (b Base) Code() string       { return b.Meta.Code }
func (b Base) Message() string    { return b.Meta.Message }
func (b Base) Severity() Severity { return b.Meta.Severity }

// Name falls back to the rule code when no explicit name was provided.
func (b Base) Name() string {
	if b.Meta.Name == "" {
		return b.Meta.Code
	}
	return b.Meta.Name
}

func (b Base) Description() string { return b.Meta.Description }
func (b Base) Category() string    { return b.Meta.Category }
func (b Base) Tags() []string      { return b.Meta.Tags }

type funcRule struct {
	Base
	fn func(*Context) (bool, error)
}

func (r funcRule) IsBroken(rctx *Context) (bool, error) { return r.fn(rctx) }

// Func builds a synchronous rule from a predicate closure and metadata,
// avoiding the need for a dedicated type per rule.
func Func(meta Metadata, fn func(*Context) (bool, error)) Rule {
	return funcRule{Base: Base{Meta: meta}, fn: fn}
}

type asyncFuncRule struct {
	Base
	fn func(context.Context, *Context) (bool, error)
}

func (r asyncFuncRule) IsBroken(ctx context.Context, rctx *Context) (bool, error) {
	return r.fn(ctx, rctx)
}

// AsyncFunc builds an asynchronous rule from a predicate closure and metadata.
func AsyncFunc(meta Metadata, fn func(context.Context, *Context) (bool, error)) AsyncRule {
	return asyncFuncRule{Base: Base{Meta: meta}, fn: fn}
}
