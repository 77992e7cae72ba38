package errors

import (
	pe "github.com/pkg/errors"
)

// ResolutionError is returned when a type variable has no binding in the
// active generic environment.
type ResolutionError struct {
	*SchemaError
	Variable string
}

func NewResolutionError(variable string) *ResolutionError {
	return &ResolutionError{
		SchemaError: Errorf("type variable %s is not bound", variable),
		Variable: variable,
	}
}

// InternalInconsistencyError is returned when the mapper reaches a state that
// only a defective type mapper or resolver factory can produce.
type InternalInconsistencyError struct {
	*SchemaError
}

func NewInternalInconsistencyError(format string, a ...interface{}) *InternalInconsistencyError {
	return &InternalInconsistencyError{SchemaError: Errorf(format, a...)}
}

// NotMappableError is returned for types with no schema representation. A
// field of such a type is skipped.
type NotMappableError struct {
	*SchemaError
}

func NewNotMappableError(typeName string) *NotMappableError {
	return &NotMappableError{SchemaError: Errorf("type cannot be mapped to a schema type").WithType(typeName)}
}

// BuildError aborts a schema build.
type BuildError struct {
	*SchemaError
}

func NewBuildError(cause error, format string, a ...interface{}) *BuildError {
	return &BuildError{SchemaError: Errorf(format, a...).WithCause(cause)}
}

func IsNotMappable(err error) bool {
	var target *NotMappableError
	return pe.As(err, &target)
}

func IsResolution(err error) bool {
	var target *ResolutionError
	return pe.As(err, &target)
}

func IsInternalInconsistency(err error) bool {
	var target *InternalInconsistencyError
	return pe.As(err, &target)
}

func IsBuild(err error) bool {
	var target *BuildError
	return pe.As(err, &target)
}

// Wrap annotates err with a message, keeping err as its cause.
func Wrap(err error, msg string) error {
	return pe.Wrap(err, msg)
}

func Wrapf(err error, format string, a ...interface{}) error {
	return pe.Wrapf(err, format, a...)
}
