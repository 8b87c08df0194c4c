package resolver

import (
	"errors"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/four-bytes/four-template-resolver/pkg/templatecache"
)

// Load returns the raw template content for a name and optional context.
// Cached content wins; otherwise the candidate storage paths are tried in
// order ("{context}_{name}{ext}" when a context is given, then
// "{name}{ext}") and the first existing file is cached and returned.
// When no candidate exists, strict mode raises a [NotFoundError]; otherwise
// an empty string is cached and returned.
func (e *Engine) Load(name, context string) (string, error) {
	key := templatecache.Key(name, context)

	if content, ok := e.cache.Get(key); ok {
		e.log.Debug("template cache hit", slog.String("key", key))
		return content, nil
	}

	for _, path := range e.candidatePaths(name, context) {
		data, err := e.storage.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", err
		}

		content := string(data)
		e.cache.Set(key, content)
		e.log.Debug("template loaded from storage",
			slog.String("key", key), slog.String("path", path))
		return content, nil
	}

	if e.strict {
		return "", &NotFoundError{Name: name, Context: context}
	}

	e.cache.Set(key, "")
	return "", nil
}

// HasTemplate reports whether the template resolves for the name and
// optional context, either through registered cache content or one of the
// candidate storage paths. Negative cache entries (the empty strings cached
// for missing templates in non-strict mode) do not count.
func (e *Engine) HasTemplate(name, context string) bool {
	key := templatecache.Key(name, context)
	if content, ok := e.cache.Get(key); ok && content != "" {
		return true
	}

	for _, path := range e.candidatePaths(name, context) {
		if e.storage.Exists(path) {
			return true
		}
	}
	return false
}

// AvailableTemplates lists the template names present in storage, extension
// stripped. With a context, only templates carrying the "{context}_" prefix
// are listed, prefix stripped.
func (e *Engine) AvailableTemplates(context string) ([]string, error) {
	files, err := e.storage.List()
	if err != nil {
		return nil, err
	}

	prefix := ""
	if context != "" {
		prefix = context + "_"
	}

	var names []string
	for _, file := range files {
		name, ok := strings.CutSuffix(file, e.ext)
		if !ok {
			continue
		}
		if prefix != "" {
			name, ok = strings.CutPrefix(name, prefix)
			if !ok {
				continue
			}
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// RegisterTemplate writes content directly into the cache under the
// computed key, bypassing storage entirely. Subsequent resolutions see the
// registered content until [Engine.ClearCache]. While caching is disabled
// this is a no-op.
func (e *Engine) RegisterTemplate(name, content, context string) {
	e.cache.Set(templatecache.Key(name, context), content)
}

// candidatePaths assembles the storage file names tried for a template, in
// fallback order.
func (e *Engine) candidatePaths(name, context string) []string {
	if context != "" {
		return []string{
			context + "_" + name + e.ext,
			name + e.ext,
		}
	}
	return []string{name + e.ext}
}
