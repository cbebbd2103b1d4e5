package params

import (
	"errors"
	"strings"
)

// ErrUnknownMode indicates an opex mode name that is not one of Modes.
var ErrUnknownMode = errors.New("params: unknown opex mode")

// ErrMultipleDocuments indicates parameter input holding more than one YAML document.
var ErrMultipleDocuments = errors.New("params: input holds more than one document")

// FieldError is one violated constraint. Field is the json name of the
// offending field, with an index path for opex lines (e.g. "opex[2].value").
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) String() string { return e.Field + ": " + e.Reason }

// ValidationError lists every violated field of a ParameterSet, in field order.
type ValidationError struct {
	Violations []FieldError `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "params: invalid parameter set: " + strings.Join(parts, "; ")
}

// Has reports whether field is among the violations.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the violated field names in order.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Field
	}
	return out
}
