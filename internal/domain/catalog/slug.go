package catalog

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Handle derives a URL-safe slug from a human-readable name: lowercase,
// every run of characters outside [a-z0-9] collapsed to a single hyphen,
// leading and trailing hyphens stripped. Deriving a handle from an existing
// handle returns the same string.
//
// A name with no alphanumeric characters yields the empty string.
func Handle(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
