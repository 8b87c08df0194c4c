package extractor

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Convert normalizes a raw accessor value into the shape templates render:
//
//   - nil stays nil
//   - dates become calendar-date strings "YYYY-MM-DD"
//   - lists become a ", "-joined string of their converted non-nil,
//     non-empty elements, order preserved
//   - values with a textual representation (fmt.Stringer) become that text
//   - any other struct, map, or pointer to one is dropped to nil
//   - booleans become "1" or "0"
//   - strings and numbers pass through unchanged
func Convert(v any) any {
	if v == nil {
		return nil
	}

	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format("2006-01-02")
	case bool:
		if t {
			return "1"
		}
		return "0"
	case string:
		return t
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return joinList(rv)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return Convert(rv.Elem().Interface())
	case reflect.Struct, reflect.Map:
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return nil
	}

	return v
}

// joinList renders a slice or array as its converted elements joined with
// ", ". Nil elements and elements converting to the empty string are left
// out; the remaining order is preserved.
func joinList(rv reflect.Value) string {
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := Convert(rv.Index(i).Interface())
		if elem == nil {
			continue
		}
		s := fmt.Sprintf("%v", elem)
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
