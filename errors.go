package asyncorm

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for the two failure kinds of the field subsystem.
var (
	// ErrDeclaration is returned when a field descriptor is constructed
	// with a malformed configuration.
	ErrDeclaration = errors.New("asyncorm: malformed field declaration")

	// ErrValidation is returned when a value violates a field constraint
	// at validate/sanitize time.
	ErrValidation = errors.New("asyncorm: field validation failed")
)

// DeclarationError represents a malformed field declaration. It is raised
// exactly once, at descriptor construction, and is always fatal to the
// construction call. The schema layer surfaces it as a startup failure.
type DeclarationError struct {
	Kind   string // Field kind (e.g. "Char", "ForeignKey")
	Option string // Offending option, if the failure is option-specific
	msg    string
}

// Error returns the error string.
func (e *DeclarationError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("asyncorm: %s field: %s: %s", e.Kind, e.Option, e.msg)
	}
	return fmt.Sprintf("asyncorm: %s field: %s", e.Kind, e.msg)
}

// Is reports whether the target error matches DeclarationError.
// This allows errors.Is(declErr, ErrDeclaration) to return true.
func (e *DeclarationError) Is(err error) bool {
	return err == ErrDeclaration
}

// NewDeclarationError returns a new DeclarationError for the given field kind.
func NewDeclarationError(kind, option, format string, args ...any) *DeclarationError {
	return &DeclarationError{Kind: kind, Option: option, msg: fmt.Sprintf(format, args...)}
}

// IsDeclaration returns true if the error is a DeclarationError.
func IsDeclaration(err error) bool {
	if err == nil {
		return false
	}
	var e *DeclarationError
	return errors.As(err, &e) || errors.Is(err, ErrDeclaration)
}

// ValidationError represents a value that violates a field constraint
// (nullability, choice membership, runtime type, length or format).
// Validation is deterministic; the same input always fails the same way.
type ValidationError struct {
	Name string // Column name of the offending field
	Err  error  // Underlying validation error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("asyncorm: validation failed for field %q: %s", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches ValidationError.
// This allows errors.Is(valErr, ErrValidation) to return true.
func (e *ValidationError) Is(err error) bool {
	return err == ErrValidation
}

// NewValidationError returns a new ValidationError for the given column.
func NewValidationError(name string, err error) *ValidationError {
	return &ValidationError{Name: name, Err: err}
}

// NewValidationErrorf returns a new ValidationError with a formatted message.
func NewValidationErrorf(name, format string, args ...any) *ValidationError {
	return &ValidationError{Name: name, Err: fmt.Errorf(format, args...)}
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e) || errors.Is(err, ErrValidation)
}
