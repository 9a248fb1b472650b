// Package localize implements the Localizer collaborator: translating a
// canonical English warning/suggestion/duration phrase into a target
// locale, falling back to the canonical phrase on any miss.
//
// The engine core never decides what a phrase *says* in a given
// language — that is this package's job, kept external per the engine's
// "locale/message catalogs are an external collaborator" contract.
package localize

import (
	"golang.org/x/text/language"
)

// Localizer translates a canonical English phrase into locale. Canonical
// phrases are the fixed catalog of duration units, warnings, suggestions,
// and score texts defined in the matching and search packages.
//
// Implementations must fall back to returning canonical unchanged when no
// translation is available for locale — never return an empty string.
type Localizer interface {
	Translate(canonical, locale string) string
}

// CatalogLocalizer is the default Localizer: a small in-memory catalog
// keyed by BCP-47 locale tag, matched with [golang.org/x/text/language]'s
// best-fit matcher so that e.g. "fr" and "fr-CA" both resolve to the same
// catalog entry.
//
// CatalogLocalizer is safe for concurrent use once constructed; it holds
// no mutable state.
type CatalogLocalizer struct {
	tags     []language.Tag
	matcher  language.Matcher
	catalogs []map[string]string // parallel to tags
}

// NewCatalogLocalizer builds a CatalogLocalizer from a map of locale tag
// (e.g. "fr-CA", "de-DE") to a map of canonical phrase -> translated
// phrase. Unknown tags are skipped with their zero value ignored; entries
// missing from a locale's map fall back to the canonical phrase.
func NewCatalogLocalizer(catalogs map[string]map[string]string) *CatalogLocalizer {
	c := &CatalogLocalizer{}
	for tag, phrases := range catalogs {
		parsed, err := language.Parse(tag)
		if err != nil {
			continue
		}
		c.tags = append(c.tags, parsed)
		c.catalogs = append(c.catalogs, phrases)
	}
	if len(c.tags) > 0 {
		c.matcher = language.NewMatcher(c.tags)
	}
	return c
}

// Translate implements Localizer. A nil receiver, an empty locale, or a
// locale with no reasonable match all fall back to canonical.
func (c *CatalogLocalizer) Translate(canonical, locale string) string {
	if c == nil || c.matcher == nil || locale == "" {
		return canonical
	}
	_, index, confidence := c.matcher.Match(parseOrUndefined(locale))
	if confidence == language.No {
		return canonical
	}
	if translated, ok := c.catalogs[index][canonical]; ok {
		return translated
	}
	return canonical
}

// parseOrUndefined parses a locale tag, falling back to language.Und
// (which never matches anything) on a malformed tag rather than erroring.
func parseOrUndefined(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Default returns a CatalogLocalizer seeded with a couple of sample
// locales so the collaborator contract is demonstrably wired; production
// embedders are expected to supply their own full catalog via
// [NewCatalogLocalizer].
func Default() *CatalogLocalizer {
	return NewCatalogLocalizer(map[string]map[string]string{
		"fr": {
			"instant": "instantané",
			"minutes": "minutes",
			"hours":   "heures",
			"days":    "jours",
			"months":  "mois",
			"years":   "ans",
			"centuries": "siècles",
		},
		"de": {
			"instant":   "sofort",
			"minutes":   "Minuten",
			"hours":     "Stunden",
			"days":      "Tage",
			"months":    "Monate",
			"years":     "Jahre",
			"centuries": "Jahrhunderte",
		},
	})
}
