package language

import (
	"reflect"

	"github.com/four-bytes/four-template-resolver/pkg/extractor"
)

// Country-bearing names probed on an entity, in priority order. The first
// list holds accessor-derived field names (what GetCountry, GetCountryCode,
// and GetLand produce through the extractor); the second holds raw struct
// field or map keys checked when no accessor matched.
var (
	countryAccessorFields = []string{"country", "countryCode", "land"}
	countryDirectFields   = []string{"Country", "CountryCode", "Land"}
)

// Detector infers the rendering language of domain entities by probing them
// for a country-like value and translating it through a [Mapping].
type Detector struct {
	mapping   *Mapping
	extractor *extractor.Extractor
}

// NewDetector creates a detector over the given mapping. The extractor is
// used to probe entities by accessor convention; pass the engine's shared
// instance so schema memoization is reused.
func NewDetector(mapping *Mapping, x *extractor.Extractor) *Detector {
	if x == nil {
		x = extractor.New()
	}
	return &Detector{mapping: mapping, extractor: x}
}

// Mapping returns the mapping the detector translates countries through.
func (d *Detector) Mapping() *Mapping {
	return d.mapping
}

// DetectFromSingle probes the entity for a country value and maps it to a
// language. Entities without any recognizable country yield the mapping's
// default.
func (d *Detector) DetectFromSingle(entity any) string {
	country := d.findCountry(entity)
	if country == "" {
		return d.mapping.Default()
	}
	return d.mapping.Lookup(country)
}

// DetectFromMany returns the first entity's detected language that differs
// from the mapping's default. When every entity detects as the default,
// whether because no country was found or because the country legitimately
// maps to the default language, the default is returned; the two cases are
// indistinguishable by design.
func (d *Detector) DetectFromMany(entities []any) string {
	def := d.mapping.Default()
	for _, entity := range entities {
		if lang := d.DetectFromSingle(entity); lang != def {
			return lang
		}
	}
	return def
}

// findCountry tries the accessor-derived names first, then raw field names,
// returning the first non-empty string found.
func (d *Detector) findCountry(entity any) string {
	if entity == nil {
		return ""
	}

	if data, err := d.extractor.Extract(entity); err == nil {
		for _, name := range countryAccessorFields {
			if s, ok := data[name].(string); ok && s != "" {
				return s
			}
		}
		// Map entities expose their keys verbatim, so the direct names
		// live in the same mapping.
		for _, name := range countryDirectFields {
			if s, ok := data[name].(string); ok && s != "" {
				return s
			}
		}
	}

	return countryFromStructFields(entity)
}

// countryFromStructFields reads exported string fields directly off a struct
// for entities that carry plain fields instead of accessors.
func countryFromStructFields(entity any) string {
	v := reflect.ValueOf(entity)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}

	for _, name := range countryDirectFields {
		f := v.FieldByName(name)
		if f.IsValid() && f.Kind() == reflect.String && f.String() != "" {
			return f.String()
		}
	}
	return ""
}
