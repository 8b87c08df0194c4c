package resolver

import (
	"io"
	"log/slog"
	"strings"

	"github.com/four-bytes/four-template-resolver/pkg/extractor"
	"github.com/four-bytes/four-template-resolver/pkg/language"
	"github.com/four-bytes/four-template-resolver/pkg/templatecache"
)

// Data is the render context: variable names (dot-delimited paths address
// nested maps) mapped to strings, numbers, booleans, lists, nested maps,
// or nil.
type Data = map[string]any

// Engine renders text templates by merging mini-language placeholders with
// values from an explicit mapping or extracted from domain entities. It
// selects among template variants by rendering context (sales channel) and
// detected language, and caches raw template text and per-type extraction
// schemas for repeated use.
//
// Engine is not safe for concurrent use; create one instance per goroutine
// or synchronize externally.
type Engine struct {
	storage   Storage
	cache     *templatecache.Cache
	extractor *extractor.Extractor
	detector  *language.Detector
	mapping   *language.Mapping
	log       *slog.Logger
	ext       string
	strict    bool
	caching   bool
}

// New creates an engine. Without options it serves an empty in-memory
// storage with caching enabled, non-strict mode, the ".txt" extension, and
// the default language mapping.
func New(opts ...Option) *Engine {
	e := &Engine{
		storage: NewMapStorage(nil),
		cache:   templatecache.New(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ext:     ".txt",
		caching: true,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.cache.SetEnabled(e.caching)
	e.extractor = extractor.New()
	if e.mapping == nil {
		e.mapping = language.DefaultMapping()
	}
	e.detector = language.NewDetector(e.mapping, e.extractor)

	return e
}

// Resolve loads the template by name and optional context, evaluates the
// mini-language against data, and returns the result trimmed of leading and
// trailing whitespace.
func (e *Engine) Resolve(name string, data Data, context string) (string, error) {
	content, err := e.Load(name, context)
	if err != nil {
		return "", err
	}

	out, err := evaluate(content, data, 0)
	if err != nil {
		return "", &InvalidTemplateError{Name: name, Err: err}
	}

	return strings.TrimSpace(out), nil
}

// ResolveFromEntities extracts a merged data mapping from the entities,
// determines the rendering language (detected from the entities unless lang
// is given, in which case it is normalized), and renders the
// language-suffixed template variant "{name}_{language}" when one exists,
// falling back to the plain name otherwise.
func (e *Engine) ResolveFromEntities(name string, entities []any, context, lang string) (string, error) {
	data, err := e.extractor.ExtractMultiple(entities)
	if err != nil {
		return "", err
	}

	if lang == "" {
		lang = e.detector.DetectFromMany(entities)
	} else {
		lang = language.Normalize(lang)
	}

	candidate := name + "_" + lang
	if e.HasTemplate(candidate, context) {
		e.log.Debug("resolving language variant",
			slog.String("template", candidate),
			slog.String("language", lang))
		return e.Resolve(candidate, data, context)
	}

	e.log.Debug("no language variant, falling back",
		slog.String("template", name),
		slog.String("language", lang))
	return e.Resolve(name, data, context)
}

// ResolveFromEntity is ResolveFromEntities for a single entity.
func (e *Engine) ResolveFromEntity(name string, entity any, context, lang string) (string, error) {
	return e.ResolveFromEntities(name, []any{entity}, context, lang)
}

// ClearCache drops both the template cache and the memoized extraction
// schemas.
func (e *Engine) ClearCache() {
	e.cache.Clear()
	e.extractor.ClearSchemas()
}

// SetCaching toggles template caching at runtime. Disabling purges all
// cached templates.
func (e *Engine) SetCaching(enabled bool) {
	e.caching = enabled
	e.cache.SetEnabled(enabled)
}

// CacheStats returns the template-cache usage snapshot.
func (e *Engine) CacheStats() templatecache.Stats {
	return e.cache.Stats()
}

// CacheMemoryEstimate approximates the template cache footprint in bytes.
func (e *Engine) CacheMemoryEstimate() int {
	return e.cache.MemoryEstimate()
}

// SchemaStats returns the extraction schema-cache snapshot.
func (e *Engine) SchemaStats() extractor.SchemaStats {
	return e.extractor.Stats()
}

// Extractor exposes the engine's extractor, e.g. for registering per-type
// adapters.
func (e *Engine) Extractor() *extractor.Extractor {
	return e.extractor
}

// Detector exposes the engine's language detector.
func (e *Engine) Detector() *language.Detector {
	return e.detector
}
