package resolver

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrTemplateNotFound is returned in strict mode when no candidate
	// storage path holds the requested template.
	ErrTemplateNotFound = errors.New("resolver: template not found")

	// ErrInvalidTemplate wraps any failure inside the mini-language
	// evaluator.
	ErrInvalidTemplate = errors.New("resolver: invalid template")
)

// NotFoundError carries the template name and context that failed to
// resolve. Raised only in strict mode; outside strict mode the same
// condition yields and caches an empty string.
type NotFoundError struct {
	Name    string
	Context string
}

func (e *NotFoundError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("resolver: template %q not found in context %q", e.Name, e.Context)
	}
	return fmt.Sprintf("resolver: template %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}

// InvalidTemplateError reports an evaluator failure for a named template,
// carrying the underlying cause.
type InvalidTemplateError struct {
	Err  error
	Name string
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("resolver: template %q: %v", e.Name, e.Err)
}

func (e *InvalidTemplateError) Unwrap() []error {
	return []error{ErrInvalidTemplate, e.Err}
}
