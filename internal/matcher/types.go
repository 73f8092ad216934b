// Package matcher implements the three-tier cascade — prefix trie, token
// LCS, bounded edit distance — plus the hierarchical handoff validation and
// confidence model that together resolve free-form address text against a
// gazetteer.Index.
package matcher

import (
	"github.com/ledinhtuan/vnaddr/app/models"
)

// levelResult is one level's resolution state during a single Parse call.
// name/code are empty until a tier fills them.
type levelResult struct {
	name   string
	code   string
	source models.MatchMethod // which tier last set this level
}

func (r levelResult) filled() bool { return r.code != "" }

// workingResult threads all three levels through the tier cascade. It is
// call-scoped: never shared across queries, never retained by a matcher.
type workingResult struct {
	province levelResult
	district levelResult
	ward     levelResult

	// downgrades counts levels whose Tier 1 hit was rejected by the handoff
	// step (no surviving candidate, or no resolved parent to check it
	// against), whether or not a later tier fills the level again. It feeds
	// the confidence penalty in confidence.go.
	downgrades int
}

func (w *workingResult) toParsedAddress(raw string) models.ParsedAddress {
	p := models.ParsedAddress{
		Raw:          raw,
		Province:     w.province.name,
		ProvinceCode: w.province.code,
		District:     w.district.name,
		DistrictCode: w.district.code,
		Ward:         w.ward.name,
		WardCode:     w.ward.code,
	}
	p.Valid = !p.IsEmpty()
	p.MatchMethod = dominantMethod(w)
	p.Confidence = confidenceFor(w)
	return p
}

// dominantMethod implements "most-downgraded level wins": edit_distance
// outranks lcs, which outranks trie.
func dominantMethod(w *workingResult) models.MatchMethod {
	rank := func(m models.MatchMethod) int {
		switch m {
		case models.MatchMethodEditDistance:
			return 3
		case models.MatchMethodLCS:
			return 2
		case models.MatchMethodTrie:
			return 1
		default:
			return 0
		}
	}
	best := models.MatchMethodNone
	for _, r := range []levelResult{w.province, w.district, w.ward} {
		if r.filled() && rank(r.source) > rank(best) {
			best = r.source
		}
	}
	return best
}
