package matcher

import (
	"testing"

	"github.com/ledinhtuan/vnaddr/app/models"
)

func TestConfidenceTrieOnly(t *testing.T) {
	cases := []struct {
		name string
		w    workingResult
		want float64
	}{
		{
			"province only",
			workingResult{province: levelResult{code: "HN", source: models.MatchMethodTrie}},
			0.90,
		},
		{
			"province + district",
			workingResult{
				province: levelResult{code: "HN", source: models.MatchMethodTrie},
				district: levelResult{code: "NTL", source: models.MatchMethodTrie},
			},
			0.95,
		},
		{
			"full chain",
			workingResult{
				province: levelResult{code: "HN", source: models.MatchMethodTrie},
				district: levelResult{code: "NTL", source: models.MatchMethodTrie},
				ward:     levelResult{code: "CD", source: models.MatchMethodTrie},
			},
			1.00,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := confidenceFor(&tc.w)
			if got != tc.want {
				t.Errorf("confidenceFor() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConfidenceTrieProvincePlusLCSDeeper(t *testing.T) {
	w := workingResult{
		province: levelResult{code: "HN", source: models.MatchMethodTrie},
		district: levelResult{code: "NTL", source: models.MatchMethodLCS},
	}
	if got := confidenceFor(&w); got != 0.75 {
		t.Errorf("confidenceFor() = %v, want 0.75", got)
	}

	w.ward = levelResult{code: "CD", source: models.MatchMethodLCS}
	if got := confidenceFor(&w); got != 0.80 {
		t.Errorf("confidenceFor() with ward = %v, want 0.80", got)
	}
}

func TestConfidenceLCSOnlyNoProvinceContext(t *testing.T) {
	w := workingResult{province: levelResult{code: "HN", source: models.MatchMethodLCS}}
	if got := confidenceFor(&w); got != 0.50 {
		t.Errorf("confidenceFor() = %v, want 0.50", got)
	}
}

func TestConfidenceEditDistanceCaps(t *testing.T) {
	w := workingResult{
		province: levelResult{code: "HN", source: models.MatchMethodTrie},
		district: levelResult{code: "NTL", source: models.MatchMethodTrie},
		ward:     levelResult{code: "CD", source: models.MatchMethodEditDistance},
	}
	if got := confidenceFor(&w); got != 0.6 {
		t.Errorf("confidenceFor() = %v, want 0.6 (edit-distance cap)", got)
	}
}

func TestConfidenceDowngradePenalty(t *testing.T) {
	w := workingResult{
		province:   levelResult{code: "HN", source: models.MatchMethodTrie},
		downgrades: 2,
	}
	if got := confidenceFor(&w); got != 0.80 {
		t.Errorf("confidenceFor() = %v, want 0.80 (0.90 base limited by 1.0 - 0.2 penalty)", got)
	}
}

func TestConfidenceNoProvinceIsZero(t *testing.T) {
	w := workingResult{}
	if got := confidenceFor(&w); got != 0 {
		t.Errorf("confidenceFor() = %v, want 0", got)
	}
}
