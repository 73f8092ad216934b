package matcher

import (
	"github.com/ledinhtuan/vnaddr/app/config"
	"github.com/ledinhtuan/vnaddr/app/models"
	"github.com/ledinhtuan/vnaddr/internal/gazetteer"
)

// tierHits holds, per level, the candidate entries at the single best
// sliding-window span chosen by matchTrie. A span with more than one
// candidate means a name collision (e.g. several wards named "1"); resolving
// it is handoff's job, not this tier's.
type tierHits struct {
	Province []gazetteer.Entry
	District []gazetteer.Entry
	Ward     []gazetteer.Entry
}

type spanHit struct {
	start, end int // token span [start, end)
	entries    []gazetteer.Entry
}

// matchTrie scans tokens with a sliding window of 1..maxWindow tokens
// against each level's trie and selects one hit per level using the
// positional tie-break rules: later span wins for province, earlier for
// ward, middle-biased for district; remaining ties break by lexicographic
// candidate name order.
func matchTrie(idx *gazetteer.Index, tokens []string, cfg config.MatcherCfg) tierHits {
	return tierHits{
		Province: bestHit(scanLevel(idx, models.LevelProvince, tokens, cfg.TrieWindowMaxTokens), tokens, tieBreakProvince),
		District: bestHit(scanLevel(idx, models.LevelDistrict, tokens, cfg.TrieWindowMaxTokens), tokens, tieBreakDistrict),
		Ward:     bestHit(scanLevel(idx, models.LevelWard, tokens, cfg.TrieWindowMaxTokens), tokens, tieBreakWard),
	}
}

func scanLevel(idx *gazetteer.Index, level models.Level, tokens []string, maxWindow int) []spanHit {
	var hits []spanHit
	n := len(tokens)
	for i := 0; i < n; i++ {
		maxJ := i + maxWindow
		if maxJ > n {
			maxJ = n
		}
		for j := i + 1; j <= maxJ; j++ {
			key := joinTokens(tokens[i:j])
			if entries := idx.LookupTrie(level, key); entries != nil {
				hits = append(hits, spanHit{start: i, end: j, entries: entries})
			}
		}
	}
	return hits
}

func joinTokens(tokens []string) string {
	if len(tokens) == 1 {
		return tokens[0]
	}
	out := tokens[0]
	for _, t := range tokens[1:] {
		out += " " + t
	}
	return out
}

type tieBreak func(hits []spanHit, tokenCount int) spanHit

func bestHit(hits []spanHit, tokens []string, tie tieBreak) []gazetteer.Entry {
	if len(hits) == 0 {
		return nil
	}
	maxLen := 0
	for _, h := range hits {
		if l := h.end - h.start; l > maxLen {
			maxLen = l
		}
	}
	var longest []spanHit
	for _, h := range hits {
		if h.end-h.start == maxLen {
			longest = append(longest, h)
		}
	}
	chosen := tie(longest, len(tokens))
	return dedupeAndSort(chosen.entries)
}

func tieBreakProvince(hits []spanHit, _ int) spanHit {
	best := hits[0]
	for _, h := range hits[1:] {
		if h.start > best.start {
			best = h
		}
	}
	return best
}

func tieBreakWard(hits []spanHit, _ int) spanHit {
	best := hits[0]
	for _, h := range hits[1:] {
		if h.start < best.start {
			best = h
		}
	}
	return best
}

func tieBreakDistrict(hits []spanHit, tokenCount int) spanHit {
	mid := float64(tokenCount) / 2
	best := hits[0]
	bestDist := spanMidpointDistance(best, mid)
	for _, h := range hits[1:] {
		d := spanMidpointDistance(h, mid)
		if d < bestDist || (d == bestDist && dedupeAndSort(h.entries)[0].Name < dedupeAndSort(best.entries)[0].Name) {
			best, bestDist = h, d
		}
	}
	return best
}

func spanMidpointDistance(h spanHit, mid float64) float64 {
	center := (float64(h.start) + float64(h.end)) / 2
	d := center - mid
	if d < 0 {
		d = -d
	}
	return d
}

func dedupeAndSort(entries []gazetteer.Entry) []gazetteer.Entry {
	seen := make(map[string]bool, len(entries))
	out := make([]gazetteer.Entry, 0, len(entries))
	for _, e := range entries {
		if seen[e.Code] {
			continue
		}
		seen[e.Code] = true
		out = append(out, e)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Name < out[j-1].Name; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
