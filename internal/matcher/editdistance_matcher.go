package matcher

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/ledinhtuan/vnaddr/app/config"
	"github.com/ledinhtuan/vnaddr/app/models"
	"github.com/ledinhtuan/vnaddr/internal/gazetteer"
	"github.com/xrash/smetrics"
)

// matchEditDistance is the last-resort tier: bounded Levenshtein distance
// between a sliding window of input tokens and each candidate's canonical
// name, constrained to the same hierarchical candidate set Tier 2 uses.
func matchEditDistance(idx *gazetteer.Index, lvl models.Level, tokens []string, candidates []string, cfg config.MatcherCfg) (name, code string, ok bool) {
	if len(strings.Join(tokens, "")) < cfg.EditMinPhraseChars {
		return "", "", false
	}

	bestDist := cfg.EditMaxDistance + 1
	bestJW := -1.0
	var bestCode, bestName, bestCName string

	for _, c := range candidates {
		cTokens := idx.Tokens(c)
		if len(cTokens) == 0 {
			continue
		}
		cName := strings.Join(cTokens, " ")

		for _, win := range candidateWindows(tokens, len(cTokens)) {
			phrase := strings.Join(win, " ")
			if len(phrase) < cfg.EditMinPhraseChars {
				continue
			}
			if absInt(len(phrase)-len(cName)) > cfg.EditMaxDistance {
				continue // early reject: length difference alone exceeds k
			}
			dist := boundedLevenshtein(phrase, cName, cfg.EditMaxDistance)
			if dist > cfg.EditMaxDistance {
				continue
			}
			jw := smetrics.JaroWinkler(phrase, cName, 0.7, 4)

			// Selection order per the configuration table: smallest distance
			// wins outright; a tie breaks by JaroWinkler similarity, then by
			// shorter candidate name.
			better := dist < bestDist ||
				(dist == bestDist && jw > bestJW) ||
				(dist == bestDist && jw == bestJW && len(cName) < len(bestCName))
			if better {
				display, _ := idx.CodeToName(lvl, c)
				bestDist, bestJW, bestCode, bestName, bestCName = dist, jw, c, display, cName
			}
		}
	}

	if bestCode == "" {
		return "", "", false
	}
	return bestName, bestCode, true
}

// boundedLevenshtein computes Levenshtein distance restricted to the
// diagonal band |i-j| <= k, returning a value > k as soon as no cell within
// the band can complete a path at or under k. When either string has at
// most 2k+2 runes it returns the exact library distance instead of running
// the band.
func boundedLevenshtein(a, b string, k int) int {
	ra, rb := []rune(a), []rune(b)
	if absInt(len(ra)-len(rb)) > k {
		return k + 1
	}
	if len(ra) <= 2*k+2 || len(rb) <= 2*k+2 {
		return levenshtein.ComputeDistance(a, b)
	}

	const inf = 1 << 30
	width := 2*k + 1
	prev := make([]int, width)
	curr := make([]int, width)
	for j := range prev {
		prev[j] = inf
	}
	// row 0
	for j := 0; j < width; j++ {
		col := j - k
		if col >= 0 && col <= len(rb) {
			prev[j] = col
		}
	}

	for i := 1; i <= len(ra); i++ {
		for j := range curr {
			curr[j] = inf
		}
		rowMin := inf
		for j := 0; j < width; j++ {
			col := i + j - k
			if col < 0 || col > len(rb) {
				continue
			}
			if col == 0 {
				curr[j] = i
				if curr[j] < rowMin {
					rowMin = curr[j]
				}
				continue
			}
			cost := 1
			if ra[i-1] == rb[col-1] {
				cost = 0
			}
			best := inf
			// substitution
			if prev[j] != inf {
				best = min(best, prev[j]+cost)
			}
			// deletion (from above): col unchanged, i-1 -> shifts index by +1 in band
			if j+1 < width && prev[j+1] != inf {
				best = min(best, prev[j+1]+1)
			}
			// insertion (from left): same row, col-1 -> shifts index by -1
			if j > 0 && curr[j-1] != inf {
				best = min(best, curr[j-1]+1)
			}
			curr[j] = best
			if best < rowMin {
				rowMin = best
			}
		}
		if rowMin > k {
			return k + 1
		}
		prev, curr = curr, prev
	}

	col := len(rb) - len(ra) + k
	if col < 0 || col >= width || prev[col] == inf {
		return k + 1
	}
	return prev[col]
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
