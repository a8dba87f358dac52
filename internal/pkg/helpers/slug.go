package helpers

import (
	"fmt"
	"strings"
)

// Slugify derives a URL slug from a title: lowercased, spaces collapsed to
// single hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

// DisambiguateSlug appends the numeric suffix n to base.
func DisambiguateSlug(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
