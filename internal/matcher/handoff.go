package matcher

import (
	"github.com/ledinhtuan/vnaddr/app/models"
	"github.com/ledinhtuan/vnaddr/internal/gazetteer"
)

// resolveHierarchy is the handoff step: it takes Tier 1's raw per-level
// candidate lists and accepts a level only when exactly one candidate
// survives parent-chain validation against the level already resolved
// above it. Hierarchy is never inferred upward — a uniquely-matching
// district never sets an unresolved province, and a level with zero or
// several surviving candidates is left unresolved, not guessed.
func resolveHierarchy(idx *gazetteer.Index, w *workingResult, hits tierHits) {
	if len(hits.Province) == 1 {
		e := hits.Province[0]
		w.province = levelResult{name: e.Name, code: e.Code, source: models.MatchMethodTrie}
	}

	if !w.province.filled() {
		if len(hits.District) > 0 {
			w.downgrades++
		}
		if len(hits.Ward) > 0 {
			w.downgrades++
		}
		return
	}

	districtCandidates := filterByParent(hits.District, w.province.code, idx.DistrictParent)
	if len(districtCandidates) == 1 {
		e := districtCandidates[0]
		w.district = levelResult{name: e.Name, code: e.Code, source: models.MatchMethodTrie}
	} else if len(hits.District) > 0 {
		w.downgrades++
	}

	if !w.district.filled() {
		if len(hits.Ward) > 0 {
			w.downgrades++
		}
		return
	}

	wardCandidates := filterByParent(hits.Ward, w.district.code, idx.WardParent)
	if len(wardCandidates) == 1 {
		e := wardCandidates[0]
		w.ward = levelResult{name: e.Name, code: e.Code, source: models.MatchMethodTrie}
	} else if len(hits.Ward) > 0 {
		w.downgrades++
	}
}

func filterByParent(entries []gazetteer.Entry, wantParent string, parentOf func(string) (string, bool)) []gazetteer.Entry {
	var out []gazetteer.Entry
	for _, e := range entries {
		if p, ok := parentOf(e.Code); ok && p == wantParent {
			out = append(out, e)
		}
	}
	return out
}
