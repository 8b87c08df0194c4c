// Package language maps countries to rendering languages and detects the
// language of domain entities.
//
// # Mapping
//
// A [Mapping] is an immutable country→language table with a default:
//
//	m := language.DefaultMapping()
//	m.Lookup("DEU") // "german"
//	m.Lookup("FRA") // "english" (default mapping keeps France on the default)
//	m.Lookup("???") // "english" (the default)
//
// [EuropeanMapping] extends the stock table with native languages for the
// larger European markets, so "FRA" resolves to "french". Custom tables come
// from [NewMapping] or, matching the deployment configuration format, from
// YAML via [MappingFromYAML] and [LoadMappingFile].
//
// # Normalization
//
// [Normalize] canonicalizes free-form language identifiers into lowercase
// full names: "DE" and "ger" become "german", BCP-47 tags like "de-AT"
// reduce to their base language first, and unrecognized input passes through
// lowercased. [IsValid] tests membership against the recognized names and
// short codes.
//
// # Detection
//
// A [Detector] probes an entity for a country-like value using the
// extractor's accessor conventions (GetCountry, GetCountryCode, GetLand),
// then plain field names, and translates the first hit through its mapping:
//
//	d := language.NewDetector(language.EuropeanMapping(), x)
//	d.DetectFromSingle(order)          // "french" for an order shipped to FRA
//	d.DetectFromMany([]any{a, b, c})   // first non-default detection wins
//
// DetectFromMany cannot distinguish "no country found" from "country maps to
// the default language"; both yield the default.
package language
