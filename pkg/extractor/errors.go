package extractor

import (
	"errors"
	"fmt"
)

// ErrExtraction is the sentinel all extraction errors unwrap to.
var ErrExtraction = errors.New("extractor: extraction failed")

// ExtractionError reports an entity that could not be introspected at all.
// Per-accessor failures never produce this error; they silently omit the
// affected field instead.
type ExtractionError struct {
	// Reason describes why the entity was rejected.
	Reason string

	// Index is the position of the offending element in a multi-entity
	// call, or -1 for single-entity failures.
	Index int
}

func (e *ExtractionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("extractor: element %d: %s", e.Index, e.Reason)
	}
	return "extractor: " + e.Reason
}

func (e *ExtractionError) Unwrap() error {
	return ErrExtraction
}
