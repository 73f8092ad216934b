package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"github.com/mozillazg/go-unidecode"
)

// dStrokeReplacer maps đ/Đ, which NFD does not decompose into a base letter
// plus a combining mark, to a plain d/D before diacritic stripping runs.
var dStrokeReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// StripDiacritics removes Vietnamese diacritics via NFD decomposition and
// combining-mark removal, re-composing the result to NFC.
func StripDiacritics(s string) string {
	s = dStrokeReplacer.Replace(s)
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// transliterate is a second-pass fallback for runes NFD leaves untouched
// (rare Latin Extended ligatures surfacing in OCR output).
func transliterate(s string) string {
	return unidecode.Unidecode(s)
}

// RemoveAccentsAndLowercase strips diacritics and lowercases, without
// touching punctuation or whitespace.
func RemoveAccentsAndLowercase(s string) string {
	return strings.ToLower(StripDiacritics(s))
}
