package errors

import (
	"errors"
	"fmt"
)

// Request body errors.
var (
	ErrMissingAliasTarget = errors.New("Alias target index must be provided")
	ErrMissingDocument    = errors.New("Invalid JSON must have 'document' key")
	ErrNoAggregations     = errors.New("No aggregations requested")
	ErrInvalidPage        = errors.New("Invalid page argument")
)

// NotFoundInContextError is an error which is returned when an expected value in the context is missing.
type NotFoundInContextError struct {
	Field string
}

// NewNotFoundInContextError returns an error for the given field when it is missing from the context.
func NewNotFoundInContextError(field string) *NotFoundInContextError {
	return &NotFoundInContextError{field}
}

// Error implements the error interface.
func (n *NotFoundInContextError) Error() string {
	return fmt.Sprintf("\"%s\" not found in request context", n.Field)
}

// InvalidCastError is an error which is returned when an invalid cast of a particular type is attempted.
type InvalidCastError struct {
	From string
	To   string
}

// NewInvalidCastError returns an error two types that were involved in invalid cast operation.
func NewInvalidCastError(from, to string) *InvalidCastError {
	return &InvalidCastError{from, to}
}

// Error implements the error interface.
func (i *InvalidCastError) Error() string {
	return fmt.Sprintf("cannot cast %s to %s", i.From, i.To)
}

// MappingNotFoundError is returned when a request names a mapping definition
// that isn't shipped with the service.
type MappingNotFoundError struct {
	Name string
}

// NewMappingNotFoundError returns an error for the unknown mapping name.
func NewMappingNotFoundError(name string) *MappingNotFoundError {
	return &MappingNotFoundError{name}
}

// Error implements the error interface.
func (m *MappingNotFoundError) Error() string {
	return fmt.Sprintf("Mapping definition named '%s' not found.", m.Name)
}

// InvalidFieldError is returned when a search request refers to a field
// its mapping doesn't allow for the given usage (filter, aggregation).
type InvalidFieldError struct {
	Usage string
	Field string
}

// NewInvalidFieldError returns an error for a field that can't be used for usage.
func NewInvalidFieldError(usage, field string) *InvalidFieldError {
	return &InvalidFieldError{usage, field}
}

// Error implements the error interface.
func (i *InvalidFieldError) Error() string {
	return fmt.Sprintf("Invalid %s field '%s'", i.Usage, i.Field)
}
