package language

import (
	"strings"

	"golang.org/x/text/language"
)

// codeNames translates recognized 2/3-letter ISO-style language codes into
// canonical full names. Both ISO 639-2/B and 639-2/T forms are listed where
// they differ.
var codeNames = map[string]string{
	"de": "german", "deu": "german", "ger": "german",
	"en": "english", "eng": "english",
	"fr": "french", "fra": "french", "fre": "french",
	"it": "italian", "ita": "italian",
	"es": "spanish", "spa": "spanish", "esp": "spanish",
	"nl": "dutch", "nld": "dutch", "dut": "dutch",
	"pt": "portuguese", "por": "portuguese",
	"pl": "polish", "pol": "polish",
	"da": "danish", "dan": "danish",
	"sv": "swedish", "swe": "swedish",
}

// fullNames is the set of canonical full language names.
var fullNames = func() map[string]bool {
	set := make(map[string]bool, len(codeNames))
	for _, name := range codeNames {
		set[name] = true
	}
	return set
}()

// Normalize canonicalizes a language identifier into a lowercase full name.
// Recognized 2/3-letter codes translate through the fixed table; BCP-47 tags
// such as "de-AT" reduce to their base language first. Unrecognized input
// passes through lowercased.
func Normalize(code string) string {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" {
		return ""
	}

	if name, ok := codeNames[c]; ok {
		return name
	}

	if tag, err := language.Parse(c); err == nil {
		if base, conf := tag.Base(); conf >= language.High {
			if name, ok := codeNames[base.String()]; ok {
				return name
			}
		}
	}

	return c
}

// IsValid reports whether code is a recognized full language name or short
// code, matched case-insensitively.
func IsValid(code string) bool {
	c := strings.ToLower(strings.TrimSpace(code))
	if _, ok := codeNames[c]; ok {
		return true
	}
	return fullNames[c]
}
