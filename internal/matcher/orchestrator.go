package matcher

import (
	"context"
	"strings"

	"github.com/ledinhtuan/vnaddr/app/config"
	"github.com/ledinhtuan/vnaddr/app/models"
	"github.com/ledinhtuan/vnaddr/internal/gazetteer"
	"github.com/ledinhtuan/vnaddr/internal/normalizer"
	"github.com/ledinhtuan/vnaddr/internal/prefixhandler"
)

// Parse classifies text against idx under cfg, running the tier cascade to
// completion or until ctx's deadline is reached between tiers. The deadline
// is checked only between tiers: a tier that has started runs to completion
// even if the deadline passes while it runs.
func Parse(ctx context.Context, idx *gazetteer.Index, text string, cfg config.MatcherCfg) models.ParsedAddress {
	addr, _ := ParseTraced(ctx, idx, text, cfg)
	return addr
}

// ParseWithDefaultBudget wraps Parse with a context deadline derived from
// cfg.Budget(), for callers that don't already carry a deadline.
func ParseWithDefaultBudget(idx *gazetteer.Index, text string, cfg config.MatcherCfg) models.ParsedAddress {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Budget())
	defer cancel()
	return Parse(ctx, idx, text, cfg)
}

// ParseTraced is Parse plus a debug Trace of every tier's decisions, for
// diagnostics and tests. It is not intended for the hot path.
func ParseTraced(ctx context.Context, idx *gazetteer.Index, text string, cfg config.MatcherCfg) (models.ParsedAddress, Trace) {
	trace := Trace{Input: text}

	tokens := stripMarkers(text)
	trace.NormalizedTokens = tokens

	w := &workingResult{}
	if len(tokens) == 0 {
		return w.toParsedAddress(text), trace
	}

	hits := matchTrie(idx, tokens, cfg)
	trace.Tier1 = hits
	resolveHierarchy(idx, w, hits)
	recoverDistrictFromWard(idx, w, hits)
	trace.AfterHandoff = snapshot(w)

	if budgetExceeded(ctx) {
		return w.toParsedAddress(text), trace
	}

	if !w.province.filled() {
		if name, code, ok := matchLCS(idx, tokens, models.LevelProvince, idx.AllCodes(models.LevelProvince), cfg); ok {
			w.province = levelResult{name: name, code: code, source: models.MatchMethodLCS}
		}
	}
	if w.province.filled() && !w.district.filled() {
		if name, code, ok := matchLCS(idx, tokens, models.LevelDistrict, idx.DistrictsOf(w.province.code), cfg); ok {
			w.district = levelResult{name: name, code: code, source: models.MatchMethodLCS}
		}
	}
	if w.district.filled() && !w.ward.filled() {
		if name, code, ok := matchLCS(idx, tokens, models.LevelWard, idx.WardsOf(w.district.code), cfg); ok {
			w.ward = levelResult{name: name, code: code, source: models.MatchMethodLCS}
		}
	}
	trace.AfterLCS = snapshot(w)

	if budgetExceeded(ctx) {
		return w.toParsedAddress(text), trace
	}

	if !w.province.filled() {
		if name, code, ok := matchEditDistance(idx, models.LevelProvince, tokens, idx.AllCodes(models.LevelProvince), cfg); ok {
			w.province = levelResult{name: name, code: code, source: models.MatchMethodEditDistance}
		}
	}
	if w.province.filled() && !w.district.filled() {
		if name, code, ok := matchEditDistance(idx, models.LevelDistrict, tokens, idx.DistrictsOf(w.province.code), cfg); ok {
			w.district = levelResult{name: name, code: code, source: models.MatchMethodEditDistance}
		}
	}
	if w.district.filled() && !w.ward.filled() {
		if name, code, ok := matchEditDistance(idx, models.LevelWard, tokens, idx.WardsOf(w.district.code), cfg); ok {
			w.ward = levelResult{name: name, code: code, source: models.MatchMethodEditDistance}
		}
	}
	trace.AfterEditDistance = snapshot(w)

	return w.toParsedAddress(text), trace
}

// stripMarkers splits text on commas, strips a leading administrative marker
// from each comma segment, and concatenates the remaining tokens in order.
// Markers are stripped before the tier cascade rather than during it because
// a marker like "q" or "p" would otherwise collide with trie entries for
// single-letter or single-digit entity aliases.
func stripMarkers(text string) []string {
	var tokens []string
	for _, seg := range strings.Split(text, ",") {
		norm := normalizer.NormalizeAggressive(seg)
		if norm == "" {
			continue
		}
		stripped, _ := prefixhandler.ExpandPrefixes(norm)
		tokens = append(tokens, normalizer.Tokenize(stripped)...)
	}
	return tokens
}

// recoverDistrictFromWard handles the case where Tier 1 found a single,
// unambiguous ward hit but the district handoff failed (wrong district paired
// with the right province, or no district mentioned at all). The ward's own
// parent pointer identifies its true district without requiring a fresh
// search, provided that district actually belongs to the resolved province.
func recoverDistrictFromWard(idx *gazetteer.Index, w *workingResult, hits tierHits) {
	if !w.province.filled() || w.district.filled() || len(hits.Ward) != 1 {
		return
	}
	wardHit := hits.Ward[0]
	parentCode, ok := idx.WardParent(wardHit.Code)
	if !ok {
		return
	}
	for _, d := range idx.DistrictsOf(w.province.code) {
		if d == parentCode {
			if dName, ok2 := idx.CodeToName(models.LevelDistrict, parentCode); ok2 {
				w.district = levelResult{name: dName, code: parentCode, source: models.MatchMethodLCS}
				w.ward = levelResult{name: wardHit.Name, code: wardHit.Code, source: models.MatchMethodLCS}
			}
			return
		}
	}
}

func budgetExceeded(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
