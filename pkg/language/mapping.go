package language

import (
	"sort"
	"strings"
)

// Mapping translates ISO country codes into full lowercase language names,
// falling back to a default language for unmapped countries.
// It is immutable after creation.
type Mapping struct {
	countries map[string]string
	def       string
}

// NewMapping creates a mapping with the given default language and
// country→language table. Country codes are matched case-insensitively;
// language names are stored lowercased.
func NewMapping(def string, countries map[string]string) (*Mapping, error) {
	if def == "" {
		return nil, ErrEmptyDefault
	}

	m := &Mapping{
		countries: make(map[string]string, len(countries)),
		def:       strings.ToLower(def),
	}
	for country, lang := range countries {
		if country == "" || lang == "" {
			return nil, ErrInvalidMapping
		}
		m.countries[strings.ToUpper(country)] = strings.ToLower(lang)
	}

	return m, nil
}

// DefaultMapping is the stock table used by the template engine: German-
// speaking countries map to german, everything else falls back to english.
func DefaultMapping() *Mapping {
	m, _ := NewMapping("english", map[string]string{
		"DE": "german", "DEU": "german",
		"AT": "german", "AUT": "german",
		"CH": "german", "CHE": "german",
		"LI": "german", "LIE": "german",
		"GB": "english", "GBR": "english",
		"US": "english", "USA": "english",
		"FR": "english", "FRA": "english",
	})
	return m
}

// EuropeanMapping extends [DefaultMapping] with native languages for the
// larger European markets, so FRA resolves to french instead of english.
func EuropeanMapping() *Mapping {
	m, _ := NewMapping("english", map[string]string{
		"DE": "german", "DEU": "german",
		"AT": "german", "AUT": "german",
		"CH": "german", "CHE": "german",
		"LI": "german", "LIE": "german",
		"GB": "english", "GBR": "english",
		"IE": "english", "IRL": "english",
		"US": "english", "USA": "english",
		"FR": "french", "FRA": "french",
		"BE": "french", "BEL": "french",
		"LU": "french", "LUX": "french",
		"IT": "italian", "ITA": "italian",
		"ES": "spanish", "ESP": "spanish",
		"NL": "dutch", "NLD": "dutch",
		"PT": "portuguese", "PRT": "portuguese",
		"PL": "polish", "POL": "polish",
	})
	return m
}

// Lookup returns the language mapped to the country code, or the default
// language when the code is empty or unmapped.
func (m *Mapping) Lookup(country string) string {
	if lang, ok := m.countries[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return lang
	}
	return m.def
}

// Has reports whether the country code is explicitly mapped.
func (m *Mapping) Has(country string) bool {
	_, ok := m.countries[strings.ToUpper(strings.TrimSpace(country))]
	return ok
}

// Default returns the fallback language.
func (m *Mapping) Default() string {
	return m.def
}

// Languages returns the distinct mapped languages, default included, sorted
// alphabetically.
func (m *Mapping) Languages() []string {
	set := map[string]bool{m.def: true}
	for _, lang := range m.countries {
		set[lang] = true
	}

	langs := make([]string, 0, len(set))
	for lang := range set {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
