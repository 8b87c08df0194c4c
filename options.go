package resolver

import (
	"log/slog"
	"os"

	"github.com/four-bytes/four-template-resolver/pkg/language"
)

// Option configures the engine.
type Option func(*Engine)

// WithStorage sets the template storage collaborator.
// Defaults to an empty in-memory storage, which makes the engine usable
// with RegisterTemplate alone.
func WithStorage(s Storage) Option {
	return func(e *Engine) {
		if s != nil {
			e.storage = s
		}
	}
}

// WithTemplateDirectory serves templates from a local directory.
// Shorthand for WithStorage(NewDirStorage(os.DirFS(dir))).
func WithTemplateDirectory(dir string) Option {
	return func(e *Engine) {
		if dir != "" {
			e.storage = NewDirStorage(os.DirFS(dir))
		}
	}
}

// WithExtension sets the template file extension, dot included.
// Defaults to ".txt".
func WithExtension(ext string) Option {
	return func(e *Engine) {
		if ext != "" {
			e.ext = ext
		}
	}
}

// WithStrictMode makes missing templates an error instead of an empty
// string. Defaults to false.
func WithStrictMode(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithCaching toggles template caching. Defaults to enabled.
func WithCaching(enabled bool) Option {
	return func(e *Engine) {
		e.caching = enabled
	}
}

// WithLanguageMapping sets the country→language table used for entity-based
// template selection. Defaults to [language.DefaultMapping].
func WithLanguageMapping(m *language.Mapping) Option {
	return func(e *Engine) {
		if m != nil {
			e.mapping = m
		}
	}
}

// WithLogger sets the engine logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}
