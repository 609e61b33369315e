package models

import "slices"

// Locale is a language variant of the page, taken from the first path segment.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleBengali Locale = "bn"
)

// DefaultLocales is the locale set used when none is configured.
var DefaultLocales = []Locale{LocaleEnglish, LocaleBengali}

// In reports whether l is one of the given locales.
func (l Locale) In(set []Locale) bool {
	return slices.Contains(set, l)
}

func (l Locale) String() string {
	return string(l)
}
