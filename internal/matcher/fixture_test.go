package matcher

import (
	"context"
	"testing"

	"github.com/ledinhtuan/vnaddr/app/config"
	"github.com/ledinhtuan/vnaddr/internal/gazetteer"
	"go.uber.org/zap/zaptest"
)

func strPtr(s string) *string { return &s }

// fixtureSource is a small, hand-built hierarchy covering both ordinary
// multi-token names and the single-token numeric names ("3", "1") that Ho Chi
// Minh City's districts and wards commonly use.
func fixtureSource() gazetteer.SliceSource {
	return gazetteer.SliceSource{
		ProvinceRecords: []gazetteer.Record{
			{Code: "HN", Name: "Hà Nội"},
			{Code: "HCM", Name: "Hồ Chí Minh"},
		},
		DistrictRecords: []gazetteer.Record{
			{Code: "NTL", Name: "Nam Từ Liêm", ParentCode: strPtr("HN")},
			{Code: "TB", Name: "Tân Bình", ParentCode: strPtr("HCM")},
			{Code: "Q3", Name: "3", ParentCode: strPtr("HCM")},
		},
		WardRecords: []gazetteer.Record{
			{Code: "CD", Name: "Cầu Diễn", ParentCode: strPtr("NTL")},
			{Code: "THANH", Name: "Thanh", ParentCode: strPtr("NTL")},
			{Code: "W1", Name: "1", ParentCode: strPtr("Q3")},
		},
	}
}

func buildFixtureIndex(t *testing.T) *gazetteer.Index {
	t.Helper()
	idx, err := gazetteer.BuildIndex(context.Background(), fixtureSource(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	return idx
}

func testCfg() config.MatcherCfg {
	return config.Default()
}
