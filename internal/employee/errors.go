package employee

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/httpx"
)

// NotFoundError reports an id that is absent from the store.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Employee not found for this id :: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error { return httpx.ErrNotFound }

// ValidationError lists the fields of a request body that failed validation.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError builds a ValidationError from field -> message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.fields[name])
	}
	return "invalid employee: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return httpx.ErrValidation }

// Fields returns a copy of the per-field messages.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}
