package resolver

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"strings"

	"github.com/four-bytes/four-template-resolver/pkg/extractor"
)

// maxLoopDepth bounds the re-entrant loop evaluation. Realistic templates
// nest two or three levels; anything deeper is treated as malformed.
const maxLoopDepth = 32

var errTooDeep = errors.New("loop nesting exceeds maximum depth")

var (
	variablePattern    = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_][A-Za-z0-9_.]*)\s*\}\}`)
	conditionalPattern = regexp.MustCompile(`(?s)\{\{#if\s+([A-Za-z0-9_][A-Za-z0-9_.]*)\s*\}\}(.*?)\{\{/if\}\}`)
	loopPattern        = regexp.MustCompile(`(?s)\{\{#each\s+([A-Za-z0-9_][A-Za-z0-9_.]*)\s*\}\}(.*?)\{\{/each\}\}`)
)

// evaluate runs the variable, conditional, and loop passes once each, in
// that order, over text. Loop bodies re-enter the full pipeline per
// iteration against the merged item context, so item-local tokens that
// survive the outer passes unresolved get their values on the inner run.
func evaluate(text string, data Data, depth int) (string, error) {
	if depth > maxLoopDepth {
		return "", errTooDeep
	}

	out := substituteVariables(text, data)
	out = applyConditionals(out, data)
	return applyLoops(out, data, depth)
}

// substituteVariables replaces every "{{ path }}" token whose dot-path fully
// resolves in data. Unresolvable tokens stay literal.
func substituteVariables(text string, data Data) string {
	return variablePattern.ReplaceAllStringFunc(text, func(token string) string {
		path := strings.TrimSpace(token[2 : len(token)-2])
		value, ok := resolvePath(data, path)
		if !ok {
			return token
		}
		return formatValue(value)
	})
}

// applyConditionals renders "{{#if path}} body {{/if}}" blocks: the body
// verbatim when path resolves to a truthy value, nothing otherwise. The
// first opening tag pairs with the nearest following closing tag.
func applyConditionals(text string, data Data) string {
	return conditionalPattern.ReplaceAllStringFunc(text, func(block string) string {
		m := conditionalPattern.FindStringSubmatch(block)
		path, body := m[1], m[2]

		value, ok := resolvePath(data, path)
		if ok && truthy(value) {
			return body
		}
		return ""
	})
}

// applyLoops renders "{{#each path}} body {{/each}}" blocks by evaluating
// the complete pipeline once per element against the item context. Non-list
// targets render empty.
func applyLoops(text string, data Data, depth int) (string, error) {
	var loopErr error

	out := loopPattern.ReplaceAllStringFunc(text, func(block string) string {
		if loopErr != nil {
			return block
		}

		m := loopPattern.FindStringSubmatch(block)
		path, body := m[1], m[2]

		value, ok := resolvePath(data, path)
		if !ok {
			return ""
		}
		items, ok := toList(value)
		if !ok {
			return ""
		}

		var b strings.Builder
		for i, item := range items {
			rendered, err := evaluate(body, itemContext(data, item, i), depth+1)
			if err != nil {
				loopErr = err
				return block
			}
			b.WriteString(rendered)
		}
		return b.String()
	})

	if loopErr != nil {
		return "", loopErr
	}
	return out, nil
}

// itemContext merges the outer data with a loop element: mapping elements
// contribute their own keys (winning on conflict), scalar elements are
// exposed as "value" alongside their "index".
func itemContext(outer Data, item any, index int) Data {
	ctx := maps.Clone(outer)
	if ctx == nil {
		ctx = make(Data)
	}

	if m, ok := item.(map[string]any); ok {
		maps.Copy(ctx, m)
		return ctx
	}

	ctx["value"] = item
	ctx["index"] = index
	return ctx
}

// resolvePath walks a dot-delimited path through nested mappings. The
// lookup either fully resolves or reports false; a missing segment or a
// non-mapping intermediate means the whole path is treated as absent.
func resolvePath(data Data, path string) (any, bool) {
	segments := strings.Split(path, ".")

	var current any = data
	for _, segment := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// truthy implements the conditional falsy set: nil, "", "0", false, numeric
// zero, and empty lists. Everything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// toList normalizes a resolved value into a []any for iteration. Strings
// and mappings are not lists.
func toList(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// formatValue renders a resolved variable through the same conversion the
// extractor applies, so dates, booleans, and lists read identically whether
// they arrive via entities or an explicit mapping.
func formatValue(v any) string {
	converted := extractor.Convert(v)
	switch t := converted.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprintf("%v", converted)
}
