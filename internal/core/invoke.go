package core

// This file holds the reflection plumbing for calling method attributes with
// the arguments a test passes in.

import (
	"fmt"
	"reflect"
)

//nolint:gochecknoglobals // reflect type used for receiver detection
var mockPtrType = reflect.TypeFor[*Mock]()

// callMethod calls fn with args, prepending self when fn's first parameter is
// a *Mock. All results are returned in order.
func callMethod(self *Mock, fn any, args []any) ([]any, error) {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()

	if takesReceiver(fnType) {
		args = append([]any{self}, args...)
	}

	in, err := argValues(fnType, args)
	if err != nil {
		return nil, err
	}

	out := fnVal.Call(in)

	results := make([]any, len(out))
	for i := range out {
		results[i] = out[i].Interface()
	}

	return results, nil
}

// argValues converts args into reflect values matching fnType's parameters,
// checking count and types the way a direct call would.
func argValues(fnType reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := fnType.NumIn()
	fixed := numIn

	if fnType.IsVariadic() {
		fixed--
	}

	if len(args) < fixed {
		return nil, fmt.Errorf("%w: too few args, func takes %d but %d were passed",
			ErrBadArguments, fixed, len(args))
	}

	if !fnType.IsVariadic() && len(args) > fixed {
		return nil, fmt.Errorf("%w: too many args, func takes %d but %d were passed",
			ErrBadArguments, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))

	for index, arg := range args {
		paramType := paramTypeAt(fnType, index, fixed)

		value, err := argValue(paramType, arg)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", index, err)
		}

		in[index] = value
	}

	return in, nil
}

func argValue(paramType reflect.Type, arg any) (reflect.Value, error) {
	// a nil arg is fine wherever the parameter can hold nil.
	if arg == nil {
		if isNillableKind(paramType.Kind()) {
			return reflect.Zero(paramType), nil
		}

		return reflect.Value{}, fmt.Errorf("%w: nil passed for %s", ErrBadArguments, paramType)
	}

	value := reflect.ValueOf(arg)
	if !value.Type().AssignableTo(paramType) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s",
			ErrBadArguments, value.Type(), paramType)
	}

	return value, nil
}

func isNillableKind(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive // only nillable kinds matter
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func paramTypeAt(fnType reflect.Type, index, fixed int) reflect.Type {
	if fnType.IsVariadic() && index >= fixed {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}

	return fnType.In(index)
}

func takesReceiver(fnType reflect.Type) bool {
	if fnType.NumIn() == 0 {
		return false
	}

	// the variadic slice is never a receiver
	if fnType.IsVariadic() && fnType.NumIn() == 1 {
		return false
	}

	return fnType.In(0) == mockPtrType
}
