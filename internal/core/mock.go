package core

import (
	"fmt"
	"maps"
	"slices"
)

// Mock is a test double built by a Factory. Literal attributes are read with
// Value or Prop; method and generator attributes are called with Invoke or
// Call.
type Mock struct {
	id    string
	name  string
	attrs map[string]attribute
}

// Call invokes the named attribute and returns its first result, or nil if it
// has none. It panics if the attribute is missing, not callable, or rejects
// the arguments.
func (m *Mock) Call(name string, args ...any) any {
	results, err := m.Invoke(name, args...)
	if err != nil {
		panic(err)
	}

	if len(results) == 0 {
		return nil
	}

	return results[0]
}

// Get returns the raw attribute: a literal value, the stored method func, or a
// func(args ...any) any that advances the generator's sequence.
func (m *Mock) Get(name string) (any, bool) {
	attr, ok := m.attrs[name]
	if !ok {
		return nil, false
	}

	if attr.kind == KindGenerator {
		return func(args ...any) any { return attr.cycle.next(m, args) }, true
	}

	return attr.value, true
}

// Has reports whether the mock defines name.
func (m *Mock) Has(name string) bool {
	_, ok := m.attrs[name]

	return ok
}

// ID returns the mock's unique identifier.
func (m *Mock) ID() string {
	return m.id
}

// Invoke calls a method or generator attribute with args and returns every
// result the call produced.
//
// Generator attributes return exactly one result. Methods are called through
// reflection, so args must match the func's parameters; a method whose first
// parameter is *Mock is passed the mock itself there.
func (m *Mock) Invoke(name string, args ...any) ([]any, error) {
	attr, ok := m.attrs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no attribute %q", ErrNoSuchAttribute, m, name)
	}

	switch attr.kind {
	case KindGenerator:
		return []any{attr.cycle.next(m, args)}, nil
	case KindMethod:
		results, err := callMethod(m, attr.value, args)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", m, name, err)
		}

		return results, nil
	case KindLiteral, KindNone:
	}

	return nil, fmt.Errorf("%w: %s.%s is a %s", ErrNotCallable, m, name, attr.kind)
}

// Keys returns the attribute names in sorted order.
func (m *Mock) Keys() []string {
	return slices.Sorted(maps.Keys(m.attrs))
}

// Kind returns the kind of the named attribute, or KindNone.
func (m *Mock) Kind(name string) Kind {
	attr, ok := m.attrs[name]
	if !ok {
		return KindNone
	}

	return attr.kind
}

// Name returns the name of the factory that built the mock.
func (m *Mock) Name() string {
	return m.name
}

// Prop returns the named literal property, panicking if there is none.
func (m *Mock) Prop(name string) any {
	value, err := m.Value(name)
	if err != nil {
		panic(err)
	}

	return value
}

// String identifies the mock in messages.
func (m *Mock) String() string {
	return m.name + "(" + m.id + ")"
}

// Value returns the named literal property.
func (m *Mock) Value(name string) (any, error) {
	attr, ok := m.attrs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no attribute %q", ErrNoSuchAttribute, m, name)
	}

	if attr.kind != KindLiteral {
		return nil, fmt.Errorf("%w: %s.%s is a %s", ErrNotProperty, m, name, attr.kind)
	}

	return attr.value, nil
}
