package model

import (
	"fmt"
	"sort"
	"strings"
)

// FieldError names one offending field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned when a payload fails schema validation.
// Fields is sorted by field name.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field is among the offending fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// NewValidationError builds a ValidationError from a field to reason map.
func NewValidationError(reasons map[string]string) *ValidationError {
	fields := make([]FieldError, 0, len(reasons))
	for field, reason := range reasons {
		fields = append(fields, FieldError{Field: field, Reason: reason})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return &ValidationError{Fields: fields}
}
