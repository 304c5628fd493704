package core

import "errors"

// Exported errors.
var (
	ErrBadArguments      = errors.New("bad arguments")
	ErrDuplicateName     = errors.New("duplicate factory name")
	ErrEmptySequence     = errors.New("empty sequence")
	ErrInvalidDescriptor = errors.New("invalid descriptor")
	ErrNoSuchAttribute   = errors.New("no such attribute")
	ErrNotCallable       = errors.New("attribute is not callable")
	ErrNotProperty       = errors.New("attribute is not a property")
)
