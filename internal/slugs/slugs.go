// Package slugs derives URL-safe identifiers from display strings.
package slugs

import (
	"github.com/gosimple/slug"
)

// Make returns the canonical slug for text: lowercased, transliterated to
// ASCII word characters, with runs of whitespace and punctuation collapsed
// to a single separator and leading/trailing separators stripped.
//
// Make is pure; the same input always yields the same slug. Uniqueness is
// not this package's concern — the store's unique constraint is the
// authoritative guard.
func Make(text string) string {
	return slug.Make(text)
}
