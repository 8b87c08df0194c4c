// Package templatecache provides an in-memory store for raw template content
// with per-key hit counting and aggregate usage statistics.
//
// Keys are derived deterministically from a template name and an optional
// rendering context via [Key]:
//
//	templatecache.Key("order_confirmation", "")       // "order_confirmation"
//	templatecache.Key("order_confirmation", "amazon") // "amazon_order_confirmation"
//
// # Usage
//
//	c := templatecache.New()
//	c.Set(templatecache.Key("greeting", ""), "Hello {{name}}!")
//
//	content, ok := c.Get(templatecache.Key("greeting", ""))
//	// content = "Hello {{name}}!", ok = true, hit counter = 1
//
// Every successful [Cache.Get] increments the key's hit counter;
// [Cache.Stats] aggregates the counters into entry count, total hits,
// hit rate, and the most used key. [Cache.MemoryEstimate] approximates the
// byte footprint of the cached content.
//
// The cache can be disabled with [Cache.SetEnabled]. While disabled, Get
// always misses, Set is a no-op, and the entry map is cleared, so flipping
// the flag doubles as a purge.
//
// # Concurrency
//
// Cache is plain mutable state with no internal locking. Use one instance
// per goroutine or guard a shared instance externally.
package templatecache
