package domain

import "fmt"

// ValidationError marks a ledger entry that is structurally unusable for
// matching, such as a malformed card number or a wrong transaction type. The
// entry is reported as unmatched; the run continues.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ParseError marks a stored expense field that could not be parsed or
// resolved. The record is skipped with a warning; the run continues.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot resolve %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
