// Package slugify derives URL-safe identifiers from titles.
package slugify

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a lowercase kebab-case slug. Non-ASCII
// characters are transliterated first so "Café résumé" becomes "cafe-resume".
func Slugify(s string) string {
	result := unidecode.Unidecode(s)
	result = strings.ToLower(strings.TrimSpace(result))
	result = strings.ReplaceAll(result, " ", "-")
	result = nonSlugChars.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
