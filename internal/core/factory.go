package core

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Factory builds mocks from a set of default descriptors.
type Factory struct {
	defaults Descriptors
	name     string
	logger   *slog.Logger
}

// NewFactory returns a factory for mocks with the given defaults. Nothing is
// validated until a mock is built. defaults is kept by reference.
func NewFactory(defaults Descriptors, opts ...Option) *Factory {
	factory := &Factory{
		defaults: defaults,
		name:     "mock",
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(factory)
	}

	return factory
}

// Defaults returns the descriptors the factory was created with.
func (f *Factory) Defaults() Descriptors {
	return f.defaults
}

// MustNew builds a mock like New, failing the test through t on error.
func (f *Factory) MustNew(t TestReporter, overrides ...Descriptors) *Mock {
	t.Helper()

	mock, err := f.New(overrides...)
	if err != nil {
		t.Fatalf("building %s: %v", f.name, err)
	}

	return mock
}

// Name returns the name given to mocks from this factory.
func (f *Factory) Name() string {
	return f.name
}

// New builds a mock. Defaults are resolved first, then each override set in
// order, each replacing any attribute already present under the same key.
// Every descriptor is resolved, including defaults that end up replaced.
func (f *Factory) New(overrides ...Descriptors) (*Mock, error) {
	id, err := newMockID()
	if err != nil {
		return nil, err
	}

	mock := &Mock{id: id, name: f.name, attrs: make(map[string]attribute)}

	err = assignAll(mock, f.defaults)
	if err != nil {
		return nil, err
	}

	for _, set := range overrides {
		err = assignAll(mock, set)
		if err != nil {
			return nil, err
		}
	}

	f.logger.Debug("mock built",
		slog.String("name", f.name),
		slog.String("id", id),
		slog.Int("attributes", len(mock.attrs)),
		slog.Int("override_sets", len(overrides)),
	)

	return mock, nil
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger for build records. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithName sets the name used for built mocks in messages.
func WithName(name string) Option {
	return func(f *Factory) {
		if name != "" {
			f.name = name
		}
	}
}

// TestReporter is the minimal interface mockumentary needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

func assignAll(mock *Mock, set Descriptors) error {
	for _, key := range slices.Sorted(maps.Keys(set)) {
		attr, err := resolveAttribute(set[key])
		if err != nil {
			return fmt.Errorf("%s.%s: %w", mock, key, err)
		}

		mock.attrs[key] = attr
	}

	return nil
}
