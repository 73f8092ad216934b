// Package alias generates the deterministic set of search-key variants for
// a gazetteer entity name, turning common abbreviations into O(1) trie hits
// instead of relying on fuzzy matching for every query.
package alias

import (
	"strings"

	"github.com/ledinhtuan/vnaddr/internal/normalizer"
)

const maxInitialTokens = 5

// Generate returns the deduplicated set of aliases for name, in the order
// described by the variant rules: full form, no-space, initials, dotted
// initials, first+last token, first-initial+rest. Every alias is built from
// aggressive-normalized tokens; the dotted-initials variant keeps its dots.
func Generate(name string) []string {
	full := normalizer.NormalizeAggressive(name)
	if full == "" {
		return nil
	}
	tokens := strings.Fields(full)

	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	add(full)

	if len(tokens) == 1 || isNumericName(tokens) {
		return out
	}

	add(strings.Join(tokens, ""))
	add(initials(tokens, ""))
	add(initials(tokens, "."))

	if len(tokens) >= 3 {
		add(tokens[0] + " " + tokens[len(tokens)-1])
	}
	if len(tokens) >= 2 {
		add(string([]rune(tokens[0])[:1]) + " " + strings.Join(tokens[1:], " "))
	}

	return out
}

func isNumericName(tokens []string) bool {
	if len(tokens) != 1 {
		return false
	}
	for _, r := range tokens[0] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func initials(tokens []string, sep string) string {
	n := len(tokens)
	if n > maxInitialTokens {
		n = maxInitialTokens
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && sep != "" {
			b.WriteString(sep)
		}
		r := []rune(tokens[i])
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return b.String()
}
