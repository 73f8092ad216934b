// Package normalizer turns free-form Vietnamese address text into a
// canonical token sequence, the common currency every matcher tier operates
// on.
package normalizer

import (
	"regexp"
	"strings"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	// reStructuralNoise spares '.' and ',' so NormalizeStructural keeps
	// them; reAggressiveNoise removes them along with all other punctuation.
	reStructuralNoise = regexp.MustCompile(`[^a-z0-9.,\s]`)
	reAggressiveNoise = regexp.MustCompile(`[^a-z0-9\s]`)
)

// NormalizeStructural lowercases, strips diacritics, and collapses
// whitespace, but preserves '.' and ','. The matching path does not call it:
// the orchestrator splits on commas itself and hands the prefix handler
// aggressively normalized segments.
func NormalizeStructural(text string) string {
	s := foldToAscii(text)
	s = reStructuralNoise.ReplaceAllString(s, " ")
	return collapse(s)
}

// NormalizeAggressive strips all punctuation in addition to diacritics and
// case; this is the canonical form used by trie keys, aliases, and every
// matcher tier.
func NormalizeAggressive(text string) string {
	s := foldToAscii(text)
	s = reAggressiveNoise.ReplaceAllString(s, " ")
	return collapse(s)
}

// foldToAscii lowercases and strips diacritics, falling back to
// transliteration for any rune NFD left untouched.
func foldToAscii(text string) string {
	s := strings.ToLower(StripDiacritics(text))
	s = transliterate(s)
	return strings.ToLower(s)
}

func collapse(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// Tokenize splits an already-normalized string on whitespace. Empty input
// yields an empty, non-nil slice.
func Tokenize(normalized string) []string {
	if normalized == "" {
		return []string{}
	}
	return strings.Fields(normalized)
}
