package matcher

import (
	"github.com/ledinhtuan/vnaddr/app/config"
	"github.com/ledinhtuan/vnaddr/app/models"
	"github.com/ledinhtuan/vnaddr/internal/gazetteer"
)

// matchLCS fills level using hierarchical token-level LCS similarity against
// a candidate set constrained by whatever parent is already resolved.
// For district and ward the caller passes the children of the resolved
// parent; for province, which has no parent, it passes AllCodes.
func matchLCS(idx *gazetteer.Index, tokens []string, level models.Level, candidates []string, cfg config.MatcherCfg) (name, code string, ok bool) {
	if len(candidates) == 0 || len(tokens) == 0 {
		return "", "", false
	}

	bestScore := -1.0
	var bestCode, bestName string
	for _, c := range candidates {
		cTokens := idx.Tokens(c)
		if len(cTokens) == 0 {
			continue
		}
		windows := candidateWindows(tokens, len(cTokens))
		localBest := -1.0
		for _, win := range windows {
			l := lcsLength(win, cTokens)
			score := 2 * float64(l) / float64(len(win)+len(cTokens))
			if score > localBest {
				localBest = score
			}
		}
		if localBest < cfg.LCSThreshold {
			continue
		}
		cName, _ := idx.CodeToName(level, c)
		if localBest > bestScore ||
			(localBest == bestScore && len(cName) > len(bestName)) {
			bestScore, bestCode, bestName = localBest, c, cName
		}
	}
	if bestCode == "" {
		return "", "", false
	}
	return bestName, bestCode, true
}

// lcsLength computes the longest-common-subsequence length between two
// token sequences with a rolling two-row DP array.
func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
