package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent content validation failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Field Errors.

	// ErrMissingField indicates a required CSV field is absent or blank.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidNumber indicates a numeric field could not be parsed.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrOutOfBounds indicates coordinates outside the Nepal bounding box.
	ErrOutOfBounds = errors.New("out of bounds")

	// Collection Errors.

	// ErrDuplicateID indicates two records in one collection share an id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrEmptyCollection indicates a CSV that must have rows has none.
	ErrEmptyCollection = errors.New("empty collection")

	// Source Errors.

	// ErrIO indicates a content file could not be read.
	ErrIO = errors.New("io error")

	// ErrParse indicates a CSV file is structurally malformed.
	ErrParse = errors.New("parse error")
)

// MissingFieldError reports a blank required field.
// EntityID is the owning entity id, or "row N" when the id itself is missing.
type MissingFieldError struct {
	Field    string
	EntityID string
}

func (e *MissingFieldError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("missing required field %q for %s", e.Field, e.EntityID)
}

// Is matches ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidNumberError reports a field that is present but not numeric.
type InvalidNumberError struct {
	Field    string
	Value    string
	EntityID string
}

func (e *InvalidNumberError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("invalid number for field %s: %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid number for field %s of %s: %q", e.Field, e.EntityID, e.Value)
}

// Is matches ErrInvalidNumber.
func (e *InvalidNumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}

// ValidationError reports a field whose value violates a domain rule
// (id format, enum membership, date format, coordinate bounds).
type ValidationError struct {
	EntityID string
	Field    string
	Value    string
	Reason   string

	// Kind is the sentinel the error matches. Defaults to ErrInvalidInput.
	Kind error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.EntityID != "" {
		msg += " for " + e.EntityID
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is matches the configured Kind, falling back to ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	if e.Kind != nil {
		return target == e.Kind
	}
	return target == ErrInvalidInput
}

// DuplicateIDError reports an id seen twice in one collection.
type DuplicateIDError struct {
	Domain string
	ID     string
	Row    int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id %q at row %d", e.Domain, e.ID, e.Row)
}

// Is matches ErrDuplicateID.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// RowError ties a parse failure to the CSV row it came from.
type RowError struct {
	Domain string
	Row    int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Domain, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ReadError reports a content file that could not be read or parsed.
// Kind is ErrIO or ErrParse; Err is the underlying cause.
type ReadError struct {
	Path string
	Kind error
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause so errors.Is works for
// ErrIO/ErrParse as well as fs.ErrNotExist.
func (e *ReadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
