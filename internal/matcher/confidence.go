package matcher

import "github.com/ledinhtuan/vnaddr/app/models"

// confidenceFor implements the confidence table: a base score keyed by which
// tier resolved the deepest filled level and how many levels are filled,
// capped at 0.6 when any level came from the edit-distance tier. The result
// is the lower of that score and 1.0 minus 0.1 per downgrade (a Tier 1 hit
// rejected at handoff, see workingResult.downgrades).
func confidenceFor(w *workingResult) float64 {
	if !w.province.filled() {
		return 0
	}

	usedEdit := w.province.source == models.MatchMethodEditDistance ||
		w.district.source == models.MatchMethodEditDistance ||
		w.ward.source == models.MatchMethodEditDistance
	provinceFromLCS := w.province.source == models.MatchMethodLCS

	var base float64
	switch {
	case provinceFromLCS:
		// "LCS only (no P context)" row.
		if w.ward.filled() {
			base = 0.60
		} else if w.district.filled() {
			base = 0.55
		} else {
			base = 0.50
		}
	case w.district.source == models.MatchMethodLCS || w.ward.source == models.MatchMethodLCS:
		// "Trie P + LCS D/W" row: province resolved by trie, something
		// deeper resolved by LCS.
		if w.ward.filled() {
			base = 0.80
		} else {
			base = 0.75
		}
	default: // trie only
		if w.ward.filled() {
			base = 1.00
		} else if w.district.filled() {
			base = 0.95
		} else {
			base = 0.90
		}
	}
	if usedEdit && base > 0.6 {
		base = 0.6
	}

	penalty := 0.1 * float64(w.downgrades)
	score := base
	if cap := 1.0 - penalty; cap < score {
		score = cap
	}
	if score < 0 {
		score = 0
	}
	return score
}
