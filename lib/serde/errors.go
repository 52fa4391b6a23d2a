package serde

import (
	"errors"
	"fmt"
)

var (
	// ErrBorrowUnavailable is returned by DeserializeBorrowedBytes if the format can not lend a view into its input
	ErrBorrowUnavailable = errors.New("borrowed view unavailable")
	// ErrInvalidLength is returned by DeserializeArray if the value has the wrong number of bytes
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidType is returned if the input holds a different kind of value than requested
	ErrInvalidType = errors.New("invalid type")
	// ErrInvalidValue is returned if a value has the right type but can not be represented (e.g. 300 as a byte)
	ErrInvalidValue = errors.New("invalid value")
)

// Error is a deserialization (or serialization) failure with a human-readable message
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Custom creates an error with the given message
func Custom(msg string) error {
	return &Error{Msg: msg}
}

// Errorf creates an error from a format string. Errors wrapped with %w can be
// matched with errors.Is and errors.As.
func Errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &Error{Msg: err.Error(), Err: err}
}

// InvalidType creates an error for an input that holds an unexpected kind of value
func InvalidType(expected, found string) error {
	return Errorf("%w: expected %s, found %s", ErrInvalidType, expected, found)
}
