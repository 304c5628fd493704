// Package fixture loads mock descriptors from YAML files, so that a suite can
// keep its canned return values out of the test code:
//
//	mocks:
//	  Clock:
//	    properties:
//	      zone: UTC
//	    methods:
//	      Now: [1, 2, 3]   # cycles 1, 2, 3, 1, ...
//	      Ready: true      # returned on every call
//
// A method given as a list cycles through the list. Any other method value is
// returned on every call; to return a list on every call, nest it: [[1, 2]].
package fixture

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/toejough/mockumentary/internal/core"
)

// Exported errors.
var (
	ErrDuplicateKey = errors.New("key is both a property and a method")
	ErrEmptyMethod  = errors.New("method has no return values")
	ErrUnknownMock  = errors.New("unknown mock")
)

// File is a parsed fixture file.
type File struct {
	Mocks map[string]Spec `yaml:"mocks"`

	path string
}

// Spec describes one mock's attributes.
type Spec struct {
	Properties map[string]any `yaml:"properties"`
	Methods    map[string]any `yaml:"methods"`
}

// Load reads and parses the fixture file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	file.path = path

	return file, nil
}

// Parse parses fixture YAML.
func Parse(data []byte) (*File, error) {
	file := &File{}

	if err := yaml.UnmarshalWithOptions(data, file, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("error unmarshalling yaml: %w", err)
	}

	for name, spec := range file.Mocks {
		if err := spec.validate(); err != nil {
			return nil, fmt.Errorf("mock %s: %w", name, err)
		}
	}

	return file, nil
}

// Catalog returns a catalog holding one factory per mock, each named after
// its mock.
func (f *File) Catalog(opts ...core.Option) (*core.Catalog, error) {
	catalog := core.NewCatalog()

	for _, name := range f.Names() {
		descriptors, err := f.Descriptors(name)
		if err != nil {
			return nil, err
		}

		factoryOpts := append(slices.Clone(opts), core.WithName(name))

		err = catalog.Register(name, core.NewFactory(descriptors, factoryOpts...))
		if err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// Descriptors returns the descriptors for the named mock.
func (f *File) Descriptors(name string) (core.Descriptors, error) {
	spec, ok := f.Mocks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMock, name)
	}

	return spec.Descriptors(), nil
}

// Names returns the mock names in sorted order.
func (f *File) Names() []string {
	return slices.Sorted(maps.Keys(f.Mocks))
}

// Path returns the path the file was loaded from, or "" if it was parsed
// from memory.
func (f *File) Path() string {
	return f.path
}

// Descriptors converts the spec into descriptors. Properties become
// literals and methods become generators.
func (s Spec) Descriptors() core.Descriptors {
	descriptors := make(core.Descriptors, len(s.Properties)+len(s.Methods))

	for key, value := range s.Properties {
		descriptors[key] = core.Literal(normalize(value))
	}

	for key := range s.Methods {
		values, _ := s.Returns(key)
		descriptors[key] = core.Returns(values...)
	}

	return descriptors
}

// Returns reports the values the named method cycles through.
func (s Spec) Returns(method string) ([]any, bool) {
	value, ok := s.Methods[method]
	if !ok {
		return nil, false
	}

	if list, ok := value.([]any); ok {
		return normalizeAll(list), true
	}

	return []any{normalize(value)}, true
}

func (s Spec) validate() error {
	for key, value := range s.Methods {
		if _, ok := s.Properties[key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}

		if list, ok := value.([]any); ok && len(list) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyMethod, key)
		}
	}

	return nil
}
