// Package prefixhandler recognizes Vietnamese administrative type markers
// (tỉnh/thành phố, quận/huyện, phường/xã and their abbreviations) in
// normalized text and strips them to reveal the bare entity name.
package prefixhandler

import (
	"regexp"
	"strings"

	"github.com/ledinhtuan/vnaddr/app/models"
)

// markerFamilies lists, per level, every recognized marker in normalized
// (aggressive) form. "tp" is deliberately present only here; its level is
// resolved contextually by ResolveTP, not by this table.
var markerFamilies = map[models.Level][]string{
	models.LevelProvince: {"tinh", "thanh pho", "tp"},
	models.LevelDistrict: {"quan", "huyen", "thi xa", "tx", "q", "h"},
	models.LevelWard:     {"phuong", "xa", "thi tran", "p", "x", "tt"},
}

// level1Cities are the centrally-governed cities where a bare "tp" marker
// names a province, not a district-level provincial city.
var level1Cities = map[string]bool{
	"ha noi":     true,
	"ho chi minh": true,
	"hai phong":  true,
	"da nang":    true,
	"can tho":    true,
	"hue":        true,
}

var reSpace = regexp.MustCompile(`\s+`)

// ExpandPrefixes looks for a single leading administrative marker in text
// (already aggressively normalized), strips it, and reports the level it
// implies. It never fails: an unrecognized marker leaves text unchanged and
// returns hint=0 (no level).
func ExpandPrefixes(text string) (stripped string, hint models.Level) {
	text = strings.TrimSpace(text)
	if text == "" {
		return text, 0
	}

	// Longer markers ("thi xa", "thanh pho") must be tried before their
	// single-token abbreviations ("tx", "tp") so "thi xa" isn't mistaken
	// for a bare "t" + "xa".
	type candidate struct {
		marker string
		level  models.Level
	}
	var all []candidate
	for lvl, markers := range markerFamilies {
		for _, m := range markers {
			all = append(all, candidate{m, lvl})
		}
	}
	// Stable-ish preference: longest marker first.
	best := -1
	bestLen := -1
	for i, c := range all {
		if strings.HasPrefix(text, c.marker+" ") || text == c.marker {
			if len(c.marker) > bestLen {
				best = i
				bestLen = len(c.marker)
			}
		}
	}
	if best < 0 {
		return text, 0
	}

	chosen := all[best]
	rest := strings.TrimSpace(strings.TrimPrefix(text, chosen.marker))
	rest = reSpace.ReplaceAllString(rest, " ")

	if chosen.marker == "tp" {
		return rest, ResolveTP(rest)
	}
	return rest, chosen.level
}

// ResolveTP decides whether a "tp" marker preceding base names a Level-1
// city (province) or a provincial city (district), per the enumerated set
// of six recognized Level-1 cities.
func ResolveTP(base string) models.Level {
	if level1Cities[strings.TrimSpace(base)] {
		return models.LevelProvince
	}
	return models.LevelDistrict
}
