package matcher

import (
	"testing"

	"github.com/ledinhtuan/vnaddr/app/models"
	"github.com/ledinhtuan/vnaddr/internal/normalizer"
)

func TestMatchEditDistanceRecoversTypo(t *testing.T) {
	idx := buildFixtureIndex(t)
	// "thnah" is a transposition typo of the single-token ward name "Thanh".
	// It shares no token with either candidate, so LCS would score 0 here;
	// only bounded edit distance can recover it.
	tokens := normalizer.Tokenize(normalizer.NormalizeAggressive("thnah"))
	name, code, ok := matchEditDistance(idx, models.LevelWard, tokens, []string{"CD", "THANH"}, testCfg())
	if !ok {
		t.Fatal("expected edit-distance match, got none")
	}
	if code != "THANH" || name != "Thanh" {
		t.Errorf("got (%q, %q), want (Thanh, THANH)", name, code)
	}
}

func TestMatchEditDistanceBeyondBoundRejected(t *testing.T) {
	idx := buildFixtureIndex(t)
	tokens := normalizer.Tokenize(normalizer.NormalizeAggressive("hoangtactuongminh"))
	_, _, ok := matchEditDistance(idx, models.LevelWard, tokens, []string{"CD", "THANH"}, testCfg())
	if ok {
		t.Fatal("expected no match: distance exceeds the configured bound")
	}
}

func TestMatchEditDistanceShortPhraseRejected(t *testing.T) {
	idx := buildFixtureIndex(t)
	tokens := normalizer.Tokenize(normalizer.NormalizeAggressive("a"))
	_, _, ok := matchEditDistance(idx, models.LevelWard, tokens, []string{"CD", "THANH"}, testCfg())
	if ok {
		t.Fatal("expected no match: phrase shorter than edit_min_phrase_chars")
	}
}

func TestBoundedLevenshteinMatchesExactForShortStrings(t *testing.T) {
	d := boundedLevenshtein("thanh", "thanh", 2)
	if d != 0 {
		t.Errorf("boundedLevenshtein(thanh, thanh) = %d, want 0", d)
	}
	d = boundedLevenshtein("thnah", "thanh", 2)
	if d == 0 || d > 2 {
		t.Errorf("boundedLevenshtein(thnah, thanh) = %d, want in (0, 2]", d)
	}
}
