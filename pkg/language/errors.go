package language

import "errors"

var (
	// ErrEmptyDefault is returned when a mapping is built without a
	// default language.
	ErrEmptyDefault = errors.New("language: default language cannot be empty")

	// ErrInvalidMapping is returned for malformed mapping tables or files.
	ErrInvalidMapping = errors.New("language: invalid mapping")
)
