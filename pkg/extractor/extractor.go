package extractor

import (
	"reflect"
)

// Field is a single named value produced for template rendering.
type Field struct {
	Name  string
	Value any
}

// FieldProvider lets a type supply its template fields directly, bypassing
// accessor discovery. The returned slice preserves field order; later
// duplicates overwrite earlier ones during merging.
type FieldProvider interface {
	TemplateFields() []Field
}

// Adapter produces the template fields for one concrete type. An adapter
// omits a field simply by not including it in the result, which mirrors the
// silent omission applied to failing accessors.
type Adapter func(entity any) []Field

// Extractor derives name→value mappings from domain entities.
//
// Resolution order per entity: a registered [Adapter] for the concrete type,
// the [FieldProvider] interface, a plain map[string]any passed through
// conversion, and finally reflection over Get*/Is*/Has* accessor methods.
// The reflected shape of a type (which accessors exist and what field names
// they derive) is memoized per type and reused for every instance until
// [Extractor.ClearSchemas]; values are re-read on every call.
//
// Extractor is not safe for concurrent use.
type Extractor struct {
	schemas  map[reflect.Type]schema
	adapters map[reflect.Type]Adapter
}

// New creates an Extractor with empty schema and adapter registries.
func New() *Extractor {
	return &Extractor{
		schemas:  make(map[reflect.Type]schema),
		adapters: make(map[reflect.Type]Adapter),
	}
}

// RegisterAdapter binds fn to prototype's concrete type. Registered adapters
// take precedence over both the FieldProvider interface and reflection.
func (x *Extractor) RegisterAdapter(prototype any, fn Adapter) {
	if prototype == nil || fn == nil {
		return
	}
	x.adapters[reflect.TypeOf(prototype)] = fn
}

// Extract derives the field mapping for a single entity. Accessors that
// panic during invocation are skipped; the extraction itself only fails when
// the value is not an entity at all (nil, scalar, or slice).
func (x *Extractor) Extract(entity any) (map[string]any, error) {
	fields, err := x.extract(entity, -1)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f.Name] = f.Value
	}
	return out, nil
}

// ExtractMultiple extracts every entity and left-folds the results into one
// mapping: later entities overwrite same-named fields from earlier ones.
// Any element that is not an entity aborts the whole call with an
// [ExtractionError] naming its index.
func (x *Extractor) ExtractMultiple(entities []any) (map[string]any, error) {
	merged := make(map[string]any)

	for i, entity := range entities {
		fields, err := x.extract(entity, i)
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			merged[f.Name] = f.Value
		}
	}

	return merged, nil
}

// SchemaFor returns the derived field names for the entity's concrete type,
// in discovery order, building and memoizing the schema if needed. Entities
// served by an adapter or the FieldProvider interface have no reflected
// schema and yield nil.
func (x *Extractor) SchemaFor(entity any) []string {
	if entity == nil {
		return nil
	}
	t := reflect.TypeOf(entity)
	if _, ok := x.adapters[t]; ok {
		return nil
	}
	if _, ok := entity.(FieldProvider); ok {
		return nil
	}
	if !reflectable(t) {
		return nil
	}

	s := x.schemaFor(t)
	names := make([]string, len(s))
	for i, a := range s {
		names[i] = a.field
	}
	return names
}

// ClearSchemas drops every memoized type schema. Registered adapters stay.
func (x *Extractor) ClearSchemas() {
	x.schemas = make(map[reflect.Type]schema)
}

// SchemaStats summarizes the memoized extraction schemas.
type SchemaStats struct {
	// Types is the number of concrete types with a cached schema.
	Types int

	// TotalProperties is the sum of field counts across all cached schemas.
	TotalProperties int
}

// Stats returns the current schema-cache snapshot.
func (x *Extractor) Stats() SchemaStats {
	s := SchemaStats{Types: len(x.schemas)}
	for _, sch := range x.schemas {
		s.TotalProperties += len(sch)
	}
	return s
}

// extract resolves the entity through the adapter registry, the
// FieldProvider interface, map passthrough, and reflection, in that order.
// index carries the element position for multi-entity error reporting.
func (x *Extractor) extract(entity any, index int) ([]Field, error) {
	if entity == nil {
		return nil, &ExtractionError{Index: index, Reason: "entity is nil"}
	}

	t := reflect.TypeOf(entity)

	if adapter, ok := x.adapters[t]; ok {
		return convertFields(adapter(entity)), nil
	}

	if provider, ok := entity.(FieldProvider); ok {
		return convertFields(provider.TemplateFields()), nil
	}

	if m, ok := entity.(map[string]any); ok {
		fields := make([]Field, 0, len(m))
		for name, value := range m {
			fields = append(fields, Field{Name: name, Value: Convert(value)})
		}
		return fields, nil
	}

	if !reflectable(t) {
		return nil, &ExtractionError{
			Index:  index,
			Reason: "not an entity: " + t.String(),
		}
	}

	s := x.schemaFor(t)
	v := reflect.ValueOf(entity)

	fields := make([]Field, 0, len(s))
	for _, a := range s {
		raw, ok := callAccessor(v, a.method)
		if !ok {
			continue
		}
		fields = append(fields, Field{Name: a.field, Value: Convert(raw)})
	}
	return fields, nil
}

func (x *Extractor) schemaFor(t reflect.Type) schema {
	if s, ok := x.schemas[t]; ok {
		return s
	}
	s := buildSchema(t)
	x.schemas[t] = s
	return s
}

// reflectable reports whether the type can carry accessor methods worth
// enumerating: a struct or a pointer to one.
func reflectable(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// callAccessor invokes a zero-argument method and recovers from any panic it
// raises. A panicking accessor reports ok=false so the field is omitted.
func callAccessor(v reflect.Value, method int) (result any, ok bool) {
	defer func() {
		if recover() != nil {
			result, ok = nil, false
		}
	}()

	out := v.Method(method).Call(nil)
	return out[0].Interface(), true
}

func convertFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Name: f.Name, Value: Convert(f.Value)}
	}
	return out
}
