package extractor

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// accessorPrefixes are the recognized getter naming conventions, in the
// order they are stripped from a method name.
var accessorPrefixes = []string{"Get", "Is", "Has"}

// accessor binds a derived field name to the method that produces its value.
type accessor struct {
	field  string
	method int
}

// schema is the ordered list of accessors discovered for one concrete type.
type schema []accessor

// buildSchema enumerates the type's exported zero-argument, single-result
// methods whose names carry a recognized getter prefix. Go enumerates
// methods in alphabetical order; when two accessors would derive the same
// field name, the first one discovered wins and later duplicates are
// skipped.
func buildSchema(t reflect.Type) schema {
	var s schema
	seen := make(map[string]bool)

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.PkgPath != "" {
			continue // unexported
		}
		field, ok := deriveFieldName(m.Name)
		if !ok {
			continue
		}
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		s = append(s, accessor{field: field, method: i})
	}

	return s
}

// deriveFieldName strips a getter prefix and lowercases the first rune.
// Returns ok=false when the name carries no recognized prefix or nothing
// remains after stripping it.
func deriveFieldName(name string) (string, bool) {
	for _, prefix := range accessorPrefixes {
		rest, found := strings.CutPrefix(name, prefix)
		if !found || rest == "" {
			continue
		}
		// "Getter" must not derive "ter": the remainder has to start a
		// new exported word.
		r, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsUpper(r) {
			continue
		}
		return string(unicode.ToLower(r)) + rest[size:], true
	}
	return "", false
}
