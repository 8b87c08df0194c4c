// Package resolver renders text templates such as marketplace listing copy
// and order confirmations by merging mini-language placeholders with values
// from an explicit mapping or extracted from arbitrary domain entities.
//
// Templates are selected among candidate variants by rendering context
// (sales channel) and language, with raw template text and per-type
// extraction schemas cached in memory for repeated and batch rendering.
//
// # Mini-language
//
// Three constructs, processed in this order:
//
//	{{ path }}                    variable; dot-paths walk nested mappings
//	{{#if path}} body {{/if}}     conditional; falsy drops the body
//	{{#each path}} body {{/each}} loop; body re-evaluated per element
//
// A variable token whose path does not fully resolve stays literal in the
// output. Conditionals treat nil, "", "0", false, numeric zero, and empty
// lists as false. Loop elements that are mappings merge their keys over the
// outer data (element wins); scalar elements appear as {{value}} with their
// {{index}}. Each iteration re-enters the complete pipeline, which is how
// item-local tokens left untouched by the outer passes get their values.
//
// # Usage
//
//	e := resolver.New(
//	    resolver.WithTemplateDirectory("templates"),
//	    resolver.WithStrictMode(true),
//	)
//
//	out, err := e.Resolve("order_confirmation", resolver.Data{
//	    "customerName": "Anna",
//	    "items":        []any{"CD", "Vinyl"},
//	}, "amazon")
//
// Resolve("order_confirmation", data, "amazon") tries the storage paths
// "amazon_order_confirmation.txt" then "order_confirmation.txt"; the first
// hit is cached under the key "amazon_order_confirmation" and reused until
// ClearCache. Missing templates yield "" (and cache the miss), or a
// [NotFoundError] in strict mode.
//
// # Entity-based rendering
//
//	out, err := e.ResolveFromEntities("listing", []any{album, seller}, "discogs", "")
//
// extracts a merged field mapping from the entities (see pkg/extractor),
// detects the rendering language from their country fields (see
// pkg/language), and prefers the "listing_german" variant over "listing"
// when one exists. The combined fallback order is context+name+language,
// name+language, context+name, name.
//
// # Errors
//
// [ErrTemplateNotFound] (strict mode only), [ErrInvalidTemplate] (evaluator
// failures, wrapped in [InvalidTemplateError] with the template name), and
// extraction failures from pkg/extractor. Check with errors.Is.
//
// # Concurrency
//
// The engine and its caches are plain mutable state with no internal
// locking: one engine per goroutine, or external synchronization.
package resolver
