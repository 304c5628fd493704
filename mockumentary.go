// Package mockumentary builds configurable stand-in objects for unit tests.
//
// A Factory is created from default descriptors. Each call to its New method
// builds an independent Mock, optionally with overrides that replace defaults
// key by key:
//
//	clock := mockumentary.New(mockumentary.Descriptors{
//	    "Zone": "UTC",                      // property
//	    "Now":  mockumentary.Returns(1, 2), // Now() -> 1, 2, 1, 2, ...
//	})
//	mock := clock.MustNew(t, mockumentary.Descriptors{"Zone": "CET"})
//
// This is the public API entry point. Implementation lives in internal/core.
package mockumentary

import (
	"log/slog"

	"github.com/toejough/mockumentary/internal/core"
)

// Exported errors, re-exported from internal/core.
var (
	ErrBadArguments      = core.ErrBadArguments
	ErrDuplicateName     = core.ErrDuplicateName
	ErrEmptySequence     = core.ErrEmptySequence
	ErrInvalidDescriptor = core.ErrInvalidDescriptor
	ErrNoSuchAttribute   = core.ErrNoSuchAttribute
	ErrNotCallable       = core.ErrNotCallable
	ErrNotProperty       = core.ErrNotProperty
)

// Attribute kinds.
const (
	KindNone      = core.KindNone
	KindLiteral   = core.KindLiteral
	KindMethod    = core.KindMethod
	KindGenerator = core.KindGenerator
)

// Catalog is a registry of named factories.
type Catalog = core.Catalog

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return core.NewCatalog()
}

// Descriptors maps attribute names to descriptor values.
type Descriptors = core.Descriptors

// Factory builds mocks from a set of default descriptors.
type Factory = core.Factory

// New returns a factory for mocks with the given defaults.
func New(defaults Descriptors, opts ...Option) *Factory {
	return core.NewFactory(defaults, opts...)
}

// Inline is a sequence element invoked with the mock and the call's arguments.
type Inline = core.Inline

// Kind classifies a mock attribute.
type Kind = core.Kind

// Mock is a test double built by a Factory.
type Mock = core.Mock

// Option configures a Factory.
type Option = core.Option

// WithLogger sets the logger for build records. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return core.WithLogger(logger)
}

// WithName sets the name used for built mocks in messages.
func WithName(name string) Option {
	return core.WithName(name)
}

// Sequence is the ordered set of values a generator cycles through.
type Sequence = core.Sequence

// TestReporter is the minimal interface mockumentary needs from test frameworks.
type TestReporter = core.TestReporter

// Generator tags produce as a generator descriptor.
func Generator(produce func() any) any {
	return core.Generator(produce)
}

// Literal tags v as a static property, even when v is a func.
func Literal(v any) any {
	return core.Literal(v)
}

// Method tags fn as a method stored verbatim on the mock.
func Method(fn any) any {
	return core.Method(fn)
}

// Returns is a generator descriptor cycling through values.
func Returns(values ...any) any {
	return core.Returns(values...)
}
