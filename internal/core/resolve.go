package core

import (
	"fmt"
	"reflect"
)

// attribute is one resolved entry of a mock's attribute table.
type attribute struct {
	kind  Kind
	value any // literal value or method func
	cycle *cycle
}

// resolveAttribute turns a descriptor into the attribute assigned on the mock.
// Generators are run here, once per call. A panic inside a generator is not
// recovered.
func resolveAttribute(descriptor any) (attribute, error) {
	switch desc := descriptor.(type) {
	case literalDescriptor:
		return attribute{kind: KindLiteral, value: desc.value}, nil
	case methodDescriptor:
		return resolveMethod(desc.fn)
	case generatorDescriptor:
		return resolveGenerator(desc.produce)
	}

	if reflect.ValueOf(descriptor).Kind() == reflect.Func {
		return resolveMethod(descriptor)
	}

	return attribute{kind: KindLiteral, value: descriptor}, nil
}

func resolveGenerator(produce func() any) (attribute, error) {
	if produce == nil {
		return attribute{}, fmt.Errorf("%w: nil generator", ErrInvalidDescriptor)
	}

	seed := produce()

	seq, ok := seed.(Sequence)
	if !ok {
		seq = Sequence{seed}
	}

	if len(seq) == 0 {
		return attribute{}, ErrEmptySequence
	}

	return attribute{kind: KindGenerator, cycle: newCycle(seq)}, nil
}

func resolveMethod(fn any) (attribute, error) {
	fnVal := reflect.ValueOf(fn)

	if fnVal.Kind() != reflect.Func {
		return attribute{}, fmt.Errorf("%w: method must be a func, got %T", ErrInvalidDescriptor, fn)
	}

	if fnVal.IsNil() {
		return attribute{}, fmt.Errorf("%w: nil method", ErrInvalidDescriptor)
	}

	return attribute{kind: KindMethod, value: fn}, nil
}
