// Package validation provides request validation for the API layer.
// Validators collect all field problems into a single Error rather than
// failing on the first one.
package validation

import (
	"fmt"
	"strings"
)

// Error aggregates per-field validation messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
