package matcher

import (
	"context"
	"testing"

	"github.com/ledinhtuan/vnaddr/app/models"
)

// Each case below exercises one property from the end-to-end scenario list:
// exact hierarchy, messy abbreviations, invalid-hierarchy correction, a typo
// that only edit distance can recover, and clean no-match input.

func TestParseProvinceOnly(t *testing.T) {
	idx := buildFixtureIndex(t)
	addr := Parse(context.Background(), idx, "Hà Nội", testCfg())

	if addr.Province != "Hà Nội" || addr.ProvinceCode != "HN" {
		t.Fatalf("Province = (%q,%q), want (Hà Nội, HN)", addr.Province, addr.ProvinceCode)
	}
	if addr.District != "" || addr.Ward != "" {
		t.Errorf("expected district/ward unresolved, got %+v", addr)
	}
	if addr.MatchMethod != models.MatchMethodTrie {
		t.Errorf("MatchMethod = %v, want trie", addr.MatchMethod)
	}
	if addr.Confidence != 0.90 {
		t.Errorf("Confidence = %v, want 0.90", addr.Confidence)
	}
	if !addr.Valid {
		t.Error("expected Valid = true")
	}
}

func TestParseCleanFullHierarchy(t *testing.T) {
	idx := buildFixtureIndex(t)
	addr := Parse(context.Background(), idx, "Cầu Diễn, Nam Từ Liêm, Hà Nội", testCfg())

	if addr.ProvinceCode != "HN" || addr.DistrictCode != "NTL" || addr.WardCode != "CD" {
		t.Fatalf("got %+v, want HN/NTL/CD", addr)
	}
	if addr.MatchMethod != models.MatchMethodTrie {
		t.Errorf("MatchMethod = %v, want trie", addr.MatchMethod)
	}
	if addr.Confidence != 1.00 {
		t.Errorf("Confidence = %v, want 1.00", addr.Confidence)
	}
}

func TestParseAbbreviatedMarkersAndNumericNames(t *testing.T) {
	idx := buildFixtureIndex(t)
	addr := Parse(context.Background(), idx, "P.1, Q.3, TP. Ho Chi Minh", testCfg())

	if addr.ProvinceCode != "HCM" || addr.DistrictCode != "Q3" || addr.WardCode != "W1" {
		t.Fatalf("got %+v, want HCM/Q3/W1", addr)
	}
	if !addr.Valid {
		t.Error("expected Valid = true")
	}
}

func TestParseWrongDistrictCorrectedByWardParent(t *testing.T) {
	idx := buildFixtureIndex(t)
	// Tân Bình is a real district, just not one of Hà Nội's — the ward
	// (Cầu Diễn) still pins down the correct district through its own
	// parent pointer.
	addr := Parse(context.Background(), idx, "Cầu Diễn, Tân Bình, Hà Nội", testCfg())

	if addr.ProvinceCode != "HN" {
		t.Fatalf("ProvinceCode = %q, want HN", addr.ProvinceCode)
	}
	if addr.DistrictCode != "NTL" {
		t.Fatalf("DistrictCode = %q, want NTL (corrected from the mismatched Tân Bình)", addr.DistrictCode)
	}
	if addr.WardCode != "CD" {
		t.Fatalf("WardCode = %q, want CD", addr.WardCode)
	}
	if !addr.Valid {
		t.Error("expected Valid = true after correction")
	}
}

func TestParseTypoRecoveredByEditDistance(t *testing.T) {
	idx := buildFixtureIndex(t)
	addr := Parse(context.Background(), idx, "Thnah, Nam Tu Liem, Ha Noi", testCfg())

	if addr.ProvinceCode != "HN" || addr.DistrictCode != "NTL" {
		t.Fatalf("got %+v, want HN/NTL resolved via trie", addr)
	}
	if addr.WardCode != "THANH" {
		t.Fatalf("WardCode = %q, want THANH (recovered from the typo via edit distance)", addr.WardCode)
	}
	if addr.MatchMethod != models.MatchMethodEditDistance {
		t.Errorf("MatchMethod = %v, want edit_distance", addr.MatchMethod)
	}
}

func TestParseNoMatchAnywhere(t *testing.T) {
	idx := buildFixtureIndex(t)
	addr := Parse(context.Background(), idx, "Atlantis, Narnia, Wakanda", testCfg())

	if addr.Valid {
		t.Errorf("expected Valid = false, got %+v", addr)
	}
	if addr.MatchMethod != models.MatchMethodNone {
		t.Errorf("MatchMethod = %v, want none", addr.MatchMethod)
	}
	if addr.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", addr.Confidence)
	}
}

func TestParseEmptyInput(t *testing.T) {
	idx := buildFixtureIndex(t)
	addr := Parse(context.Background(), idx, "", testCfg())

	if addr.Valid {
		t.Error("expected Valid = false for empty input")
	}
	if addr.Raw != "" {
		t.Errorf("Raw = %q, want empty", addr.Raw)
	}
}

func TestParseAmbiguousStandaloneDistrictNumberUnresolved(t *testing.T) {
	idx := buildFixtureIndex(t)
	// "3" alone names a district of HCM with no province context at all:
	// handoff must not guess the province from the district.
	addr := Parse(context.Background(), idx, "3", testCfg())

	if addr.ProvinceCode != "" {
		t.Errorf("ProvinceCode = %q, want empty: district must never infer province", addr.ProvinceCode)
	}
}

func TestParseRespectsExpiredBudget(t *testing.T) {
	idx := buildFixtureIndex(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	addr := Parse(ctx, idx, "Cầu Diễn, Nam Từ Liêm, Hà Nội", testCfg())

	if addr.MatchMethod != models.MatchMethodTrie {
		t.Errorf("MatchMethod = %v, want trie (Tier 1 still runs before the first budget check)", addr.MatchMethod)
	}
}
