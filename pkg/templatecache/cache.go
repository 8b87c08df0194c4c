package templatecache

// entryOverhead is the fixed per-entry bookkeeping cost, in bytes, added to
// the raw key and content sizes by MemoryEstimate.
const entryOverhead = 64

// entry holds cached template content together with its access counter.
type entry struct {
	content string
	hits    int
}

// Cache is an in-memory store for raw template content, keyed by the
// deterministic key produced by [Key]. Every successful Get increments the
// key's hit counter, which feeds the [Stats] surface.
//
// Cache is not safe for concurrent use; callers that share one instance
// across goroutines must synchronize externally.
type Cache struct {
	entries map[string]*entry
	enabled bool
}

// New creates an enabled, empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		enabled: true,
	}
}

// Key derives the cache key for a template name and optional context.
// The key is a pure function of its inputs: "{context}_{name}" when a
// context is given, "{name}" otherwise.
func Key(name, context string) string {
	if context != "" {
		return context + "_" + name
	}
	return name
}

// Get returns the cached content for key. The second return reports whether
// the key was present. A hit increments the key's counter, but only while
// the cache is enabled; a disabled cache never reports a hit.
func (c *Cache) Get(key string) (string, bool) {
	if !c.enabled {
		return "", false
	}
	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	e.hits++
	return e.content, true
}

// Set stores content under key, resetting the key's hit counter.
// Set is a no-op while the cache is disabled.
func (c *Cache) Set(key, content string) {
	if !c.enabled {
		return
	}
	c.entries[key] = &entry{content: content}
}

// Has reports whether key is present without touching its hit counter.
func (c *Cache) Has(key string) bool {
	if !c.enabled {
		return false
	}
	_, ok := c.entries[key]
	return ok
}

// Remove deletes a single key. Removing an absent key is a no-op.
func (c *Cache) Remove(key string) {
	delete(c.entries, key)
}

// Clear removes all entries. The enabled flag is left untouched.
func (c *Cache) Clear() {
	c.entries = make(map[string]*entry)
}

// SetEnabled toggles caching. Disabling drops all current entries so that a
// later re-enable starts from a clean slate.
func (c *Cache) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.Clear()
	}
}

// Enabled reports whether the cache currently accepts and serves entries.
func (c *Cache) Enabled() bool {
	return c.enabled
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
