package wiegand

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by every CodecError, so callers can classify
// failures with errors.Is without reaching for the struct.
var (
	// ErrEmptyInput marks input that is empty or whitespace only.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidFormat marks input whose shape is not recognised.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange marks well-formed input whose value does not fit
	// the target field.
	ErrOutOfRange = errors.New("out of range")

	// ErrParityCheckFailed marks a word whose stored parity bits do
	// not match its payload.
	ErrParityCheckFailed = errors.New("parity check failed")
)

// ErrorKind is a coarse category attached to codec errors.
type ErrorKind string

const (
	KindEmptyInput        ErrorKind = "empty_input"
	KindInvalidFormat     ErrorKind = "invalid_format"
	KindOutOfRange        ErrorKind = "out_of_range"
	KindParityCheckFailed ErrorKind = "parity_check_failed"
)

// CodecError wraps a failure with the operation that produced it, its
// kind, and the input field whose constraint was violated.
type CodecError struct {
	Op    string
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *CodecError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CodecError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a CodecError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

func emptyInput(op, field string) error {
	return &CodecError{Op: op, Kind: KindEmptyInput, Field: field, Err: ErrEmptyInput}
}

func invalidFormat(op, field, detail string) error {
	return &CodecError{
		Op:    op,
		Kind:  KindInvalidFormat,
		Field: field,
		Err:   fmt.Errorf("%s: %w", detail, ErrInvalidFormat),
	}
}

func outOfRange(op, field, detail string) error {
	return &CodecError{
		Op:    op,
		Kind:  KindOutOfRange,
		Field: field,
		Err:   fmt.Errorf("%s: %w", detail, ErrOutOfRange),
	}
}
