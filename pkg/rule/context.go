package rule

import (
	"fmt"
	"sync"
)

// payloadKey is the reserved key under which Typed stores its payload.
const payloadKey = "__rulekit_payload"

// Context is a typed key-value bag passed to rules that need runtime data.
// Rules may both read and write it, which enables producer/consumer rule
// chains within a single check.
//
// The storage is internally synchronized, so sharing one Context across
// concurrently evaluated rules is safe at the map level. No ordering is
// guaranteed beyond "last set wins".
type Context struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewContext creates an empty evaluation context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Set stores a value under the given key, overwriting any previous value.
func Set[T any](c *Context, key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Get retrieves a value of type T. It returns ErrKeyNotFound when the key is
// absent and ErrTypeMismatch when the stored value has a different type.
// Both cases are programming errors; use TryGet for the non-failing path.
func Get[T any](c *Context, key string) (T, error) {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T", ErrTypeMismatch, key, v)
	}
	return typed, nil
}

// MustGet retrieves a value of type T and panics when the key is absent or
// holds a different type. It is the fail-fast twin of Get.
func MustGet[T any](c *Context, key string) T {
	v, err := Get[T](c, key)
	if err != nil {
		panic(err)
	}
	return v
}

// TryGet retrieves a value of type T. It never fails: absence and type
// mismatch both report false.
func TryGet[T any](c *Context, key string) (T, bool) {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Value returns the raw stored value without a type assertion.
func (c *Context) Value(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of stored keys.
func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// Keys returns the stored keys in unspecified order.
func (c *Context) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	return keys
}

// Typed wraps a single strongly-typed payload alongside the generic bag. The
// payload is stored under a reserved key, so rules can reach it either via
// Payload on the wrapper or via the plain Context given to them.
type Typed[T any] struct {
	bag *Context
}

// NewTyped creates a typed context carrying the given payload.
func NewTyped[T any](payload T) *Typed[T] {
	c := NewContext()
	Set(c, payloadKey, payload)
	return &Typed[T]{bag: c}
}

// Payload returns the strongly-typed payload.
func (t *Typed[T]) Payload() T {
	return MustGet[T](t.bag, payloadKey)
}

// Context returns the underlying generic bag, suitable for passing to rules.
func (t *Typed[T]) Context() *Context {
	return t.bag
}
