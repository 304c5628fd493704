package core

import "slices"

// Descriptors maps attribute names to descriptor values.
//
// A value may be tagged with Literal, Method, Generator or Returns. Untagged
// func values are treated as methods and every other untagged value is a
// literal property.
type Descriptors map[string]any

// Inline is a sequence element that is invoked each time the cursor reaches
// it. It receives the mock as its receiver and the arguments the accessor was
// called with.
type Inline func(self *Mock, args ...any) any

// Kind classifies a mock attribute.
type Kind int

// Attribute kinds.
const (
	KindNone Kind = iota
	KindLiteral
	KindMethod
	KindGenerator
)

// Sequence is the ordered set of values a generator cycles through.
// Only this type requests cycling: a generator returning any other value,
// including a plain slice, is treated as a one-element sequence.
type Sequence []any

// Generator tags produce as a generator descriptor. produce runs once per
// build and its result seeds the cycling accessor.
func Generator(produce func() any) any {
	return generatorDescriptor{produce: produce}
}

// Literal tags v as a static property, even when v is a func.
func Literal(v any) any {
	return literalDescriptor{value: v}
}

// Method tags fn as a method stored verbatim on the mock.
func Method(fn any) any {
	return methodDescriptor{fn: fn}
}

// Returns is a generator descriptor cycling through values. The values are
// copied, so later writes to the caller's slice do not reach built mocks.
//
//	"foo": Returns(true, false) // foo() -> true, false, true, ...
func Returns(values ...any) any {
	seq := Sequence(slices.Clone(values))

	return generatorDescriptor{produce: func() any { return seq }}
}

// String returns the kind's lowercase name.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindMethod:
		return "method"
	case KindGenerator:
		return "generator"
	case KindNone:
		return "none"
	}

	return "unknown"
}

type generatorDescriptor struct {
	produce func() any
}

type literalDescriptor struct {
	value any
}

type methodDescriptor struct {
	fn any
}
