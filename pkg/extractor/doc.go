// Package extractor derives name→value mappings from arbitrary domain
// entities for template rendering.
//
// # Resolution order
//
// For each entity, the first matching strategy wins:
//
//  1. An [Adapter] registered for the entity's concrete type via
//     [Extractor.RegisterAdapter].
//  2. The [FieldProvider] interface implemented by the entity itself.
//  3. A plain map[string]any, passed through value conversion as-is.
//  4. Reflection: every exported zero-argument, single-result method named
//     Get*, Is*, or Has* becomes a field. The field name is the method name
//     with the prefix stripped and the first letter lowercased, so
//     GetArtistName yields "artistName" and IsAvailable yields "available".
//
// The reflected shape of a type (which accessors exist) is computed once and
// memoized per concrete type; only the values are re-read on every call.
// Use [Extractor.ClearSchemas] to drop the memoized shapes.
//
// When two accessors would derive the same field name (e.g. GetActive and
// IsActive both yielding "active"), the first method in Go's alphabetical
// enumeration order wins and the rest are skipped.
//
// # Failure semantics
//
// An accessor that panics is skipped and its field silently omitted; one
// bad member never fails the extraction. Only entities that cannot be
// introspected at all (nil, scalars, slices) produce an [ExtractionError];
// in [Extractor.ExtractMultiple] the error names the offending index.
//
// # Value conversion
//
// Raw accessor results pass through [Convert] before inclusion: dates become
// "YYYY-MM-DD" strings, booleans "1"/"0", slices a ", "-joined string,
// fmt.Stringer values their textual form, and other nested objects are
// dropped to nil. Strings and numbers are untouched.
//
// # Merging
//
//	data, err := x.ExtractMultiple([]any{album, order})
//
// extracts each entity in order and left-folds the mappings; later entities
// overwrite same-named fields from earlier ones.
package extractor
