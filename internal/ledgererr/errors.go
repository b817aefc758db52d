package ledgererr

import (
	"errors"
	"fmt"
)

// ValidationError reports a single field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidation creates a ValidationError for the given field.
func NewValidation(field string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup by key that matched nothing.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Key)
}

// IntegrityError reports a mutation that would break referential integrity
// between transactions and categories.
type IntegrityError struct {
	Reason string
}

func (e *IntegrityError) Error() string {
	return "integrity violation: " + e.Reason
}

// IOError wraps a filesystem failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CorruptFileError is returned when a ledger file exists but cannot be parsed.
// It is treated as a fatal configuration error: the file is never repaired.
type CorruptFileError struct {
	Path string
	Line int
	Err  error
}

func (e *CorruptFileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupt ledger file %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("corrupt ledger file %s: %v", e.Path, e.Err)
}

func (e *CorruptFileError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsIntegrity(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}

func IsIO(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}

func IsCorrupt(err error) bool {
	var target *CorruptFileError
	return errors.As(err, &target)
}
