package errors

import (
	"errors"
	"fmt"
)

// ErrNotImplemented marks a benchmark variant that exists on the command line
// but has no implementation yet. It is reported to the user, not treated as a failure.
var ErrNotImplemented = errors.New("not implemented")

// InvalidArgumentError represents a bad or missing command-line argument.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	if e.Argument == "" {
		return fmt.Sprintf("invalid argument: %s", e.Reason)
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// InvalidInputError represents an input file that is missing or cannot be read.
type InvalidInputError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid input file %q", e.Path)
	}
	return fmt.Sprintf("invalid input file %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying file system error.
func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(argument, format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{
		Argument: argument,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(path string, err error) *InvalidInputError {
	return &InvalidInputError{
		Path: path,
		Err:  err,
	}
}

// IsInvalidArgument reports whether err is, or wraps, an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var argErr *InvalidArgumentError
	return errors.As(err, &argErr)
}

// IsInvalidInput reports whether err is, or wraps, an InvalidInputError.
func IsInvalidInput(err error) bool {
	var inputErr *InvalidInputError
	return errors.As(err, &inputErr)
}

// IsNotImplemented reports whether err wraps ErrNotImplemented.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
