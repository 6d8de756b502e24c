package kernel

import (
	"regexp"
	"strings"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9\-]`)
)

// MunicipalitySlug is a normalized, hyphenated lowercase identifier derived
// from a city name. Slugs key the per-municipality dashboard filters and are
// persisted on each order so admin lookups avoid re-normalizing free-form city
// strings.
type MunicipalitySlug string

// NewMunicipalitySlug derives a slug from a free-form city name: trimmed,
// lower-cased, whitespace collapsed to hyphens, all other non-alphanumeric
// characters removed. An empty input yields the empty slug.
//
// Example:
//
//	kernel.NewMunicipalitySlug("Sto. Tomas") // "sto-tomas"
func NewMunicipalitySlug(city string) MunicipalitySlug {
	s := strings.ToLower(strings.TrimSpace(city))
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	return MunicipalitySlug(s)
}

// String returns the slug as a plain string.
func (s MunicipalitySlug) String() string {
	return string(s)
}

// IsEmpty reports whether no municipality could be derived.
func (s MunicipalitySlug) IsEmpty() bool {
	return s == ""
}
