package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a validation error with multiple fields.
// It collects validation errors for multiple fields and can convert
// itself to a standard Error with InvalidArgument code.
type ValidationError struct {
	// Fields maps field names to their validation error messages
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func newValidationError() *ValidationError {
	return &ValidationError{
		Fields: make(map[string][]string),
	}
}

// toError converts the collected fields to an InvalidArgument error
func (v *ValidationError) toError() *Error {
	if len(v.Fields) == 0 {
		return nil
	}

	err := InvalidArgument(v.Error())
	return err.WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder provides a fluent interface for building validation errors.
// It accumulates field-level validation errors and returns nil if no errors
// are present, or an InvalidArgument error with detailed field information.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: newValidationError(),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Fields[field] = append(vb.err.Fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if err := vb.err.toError(); err != nil {
		return err
	}
	return nil
}

// Validation helper functions

// ValidateRequired checks if a string field is required
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidatePositive checks that a numeric tuning value is greater than zero
func ValidatePositive[T int | int64 | float64](field string, value T, vb *ValidationBuilder) {
	if value <= 0 {
		vb.Fieldf(field, "must be positive, got %v", value)
	}
}

// ValidateNonNegative checks that a numeric tuning value is zero or more
func ValidateNonNegative[T int | int64 | float64](field string, value T, vb *ValidationBuilder) {
	if value < 0 {
		vb.Fieldf(field, "must not be negative, got %v", value)
	}
}

// ValidateProbability checks that a weight lies in [0, 1]
func ValidateProbability(field string, value float64, vb *ValidationBuilder) {
	if value < 0 || value > 1 {
		vb.Fieldf(field, "must be between 0 and 1, got %v", value)
	}
}

// ValidateSpan checks that a [min, max] duration or distance pair is ordered and non-negative
func ValidateSpan[T int | int64 | float64](field string, minValue, maxValue T, vb *ValidationBuilder) {
	if minValue < 0 {
		vb.Fieldf(field, "minimum must not be negative, got %v", minValue)
	}
	if maxValue < minValue {
		vb.Fieldf(field, "maximum %v is below minimum %v", maxValue, minValue)
	}
}
