package product

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s into its searchable form: lower case, diacritics
// removed, inner whitespace collapsed to single spaces.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	// đ has no decomposition.
	folded = strings.NewReplacer("đ", "d", "Đ", "d").Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}

// Slug derives a URL-safe handle from a title.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range Normalize(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
