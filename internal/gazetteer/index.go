package gazetteer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ledinhtuan/vnaddr/app/models"
	"github.com/ledinhtuan/vnaddr/internal/alias"
	"github.com/ledinhtuan/vnaddr/internal/normalizer"
	"go.uber.org/zap"
)

// Build-time failures. Apart from ctx's error when ctx is done before a
// level is added, these are the only errors BuildIndex returns; once an
// Index is built successfully it is immutable and query-time code never
// produces these.
var (
	ErrEmptyLevel    = errors.New("gazetteer: level has no records")
	ErrDuplicateCode = errors.New("gazetteer: duplicate code within a level")
	ErrMissingParent = errors.New("gazetteer: record references a parent that does not exist")
)

// Index is the immutable, in-memory gazetteer: per-level prefix tries over
// entity aliases, name/code lookup maps, parent/child adjacency, and
// precomputed token vectors for the LCS and edit-distance tiers. Built once
// by BuildIndex; every matcher holds only a read-only reference.
type Index struct {
	provinceTrie *trie
	districtTrie *trie
	wardTrie     *trie

	codeToName map[models.Level]map[string]string
	nameToCode map[models.Level]map[string][]string

	districtParent map[string]string // district code -> province code
	wardParent     map[string]string // ward code -> district code

	districtsOf map[string][]string // province code -> district codes
	wardsOf     map[string][]string // district code -> ward codes

	tokens map[string][]string // code -> aggressive-normalized token vector

	// AmbiguousAbbreviations records every reverse-abbreviation collision
	// actually observed while building the index (never hardcoded; see
	// the open-question resolution on ambiguous province codes).
	AmbiguousAbbreviations map[string][]string
}

func newIndex() *Index {
	return &Index{
		provinceTrie:           newTrie(),
		districtTrie:           newTrie(),
		wardTrie:               newTrie(),
		codeToName:             map[models.Level]map[string]string{models.LevelProvince: {}, models.LevelDistrict: {}, models.LevelWard: {}},
		nameToCode:             map[models.Level]map[string][]string{models.LevelProvince: {}, models.LevelDistrict: {}, models.LevelWard: {}},
		districtParent:         map[string]string{},
		wardParent:             map[string]string{},
		districtsOf:            map[string][]string{},
		wardsOf:                map[string][]string{},
		tokens:                 map[string][]string{},
		AmbiguousAbbreviations: map[string][]string{},
	}
}

// BuildIndex constructs an Index from source in one pass: provinces, then
// districts, then wards, asserting parent referential integrity as it goes.
// ctx carries only a caller-imposed deadline; the builder itself performs no
// I/O (source's I/O, if any, is the caller's concern).
func BuildIndex(ctx context.Context, source GazetteerSource, logger *zap.Logger) (*Index, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	idx := newIndex()

	provinces := source.Provinces()
	if len(provinces) == 0 {
		return nil, fmt.Errorf("%w: provinces", ErrEmptyLevel)
	}
	if err := idx.addLevel(ctx, models.LevelProvince, provinces, nil); err != nil {
		return nil, err
	}

	districts := source.Districts()
	if len(districts) == 0 {
		return nil, fmt.Errorf("%w: districts", ErrEmptyLevel)
	}
	if err := idx.addLevel(ctx, models.LevelDistrict, districts, idx.codeToName[models.LevelProvince]); err != nil {
		return nil, err
	}

	wards := source.Wards()
	if len(wards) == 0 {
		return nil, fmt.Errorf("%w: wards", ErrEmptyLevel)
	}
	if err := idx.addLevel(ctx, models.LevelWard, wards, idx.codeToName[models.LevelDistrict]); err != nil {
		return nil, err
	}

	idx.buildReverseAbbreviations(logger)

	logger.Info("gazetteer index built",
		zap.Int("provinces", len(provinces)),
		zap.Int("districts", len(districts)),
		zap.Int("wards", len(wards)),
		zap.Duration("duration", time.Since(start)),
	)
	if len(idx.AmbiguousAbbreviations) > 0 {
		logger.Warn("ambiguous reverse abbreviations discovered",
			zap.Int("count", len(idx.AmbiguousAbbreviations)))
	}

	return idx, nil
}

func (idx *Index) addLevel(ctx context.Context, level models.Level, records []Record, parentNames map[string]string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	tr := idx.trieFor(level)
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		if seen[rec.Code] {
			return fmt.Errorf("%w: %s %q", ErrDuplicateCode, level, rec.Code)
		}
		seen[rec.Code] = true

		if level != models.LevelProvince {
			if rec.ParentCode == nil {
				return fmt.Errorf("%w: %s %q has no parent code", ErrMissingParent, level, rec.Code)
			}
			if _, ok := parentNames[*rec.ParentCode]; !ok {
				return fmt.Errorf("%w: %s %q references %q", ErrMissingParent, level, rec.Code, *rec.ParentCode)
			}
		}

		idx.codeToName[level][rec.Code] = rec.Name
		idx.nameToCode[level][rec.Name] = append(idx.nameToCode[level][rec.Name], rec.Code)
		idx.tokens[rec.Code] = normalizer.Tokenize(normalizer.NormalizeAggressive(rec.Name))

		switch level {
		case models.LevelDistrict:
			idx.districtParent[rec.Code] = *rec.ParentCode
			idx.districtsOf[*rec.ParentCode] = append(idx.districtsOf[*rec.ParentCode], rec.Code)
		case models.LevelWard:
			idx.wardParent[rec.Code] = *rec.ParentCode
			idx.wardsOf[*rec.ParentCode] = append(idx.wardsOf[*rec.ParentCode], rec.Code)
		}

		for _, a := range alias.Generate(rec.Name) {
			tr.insert(normalizer.NormalizeAggressive(a), Entry{Code: rec.Code, Name: rec.Name})
		}
	}
	return nil
}

func (idx *Index) trieFor(level models.Level) *trie {
	switch level {
	case models.LevelProvince:
		return idx.provinceTrie
	case models.LevelDistrict:
		return idx.districtTrie
	default:
		return idx.wardTrie
	}
}

// buildReverseAbbreviations scans every entity's generated initials-style
// alias and records, per level, which short forms collide across multiple
// entities. Collisions are informational only — matchers never resolve
// through this map, since an ambiguous abbreviation requires context.
func (idx *Index) buildReverseAbbreviations(logger *zap.Logger) {
	for level, names := range idx.nameToCode {
		for name, codes := range names {
			for _, a := range alias.Generate(name) {
				a = normalizer.NormalizeAggressive(a)
				if len(strings.Fields(a)) > 1 {
					continue // only short, abbreviation-shaped aliases are tracked
				}
				key := fmt.Sprintf("%s:%s", level, a)
				idx.AmbiguousAbbreviations[key] = append(idx.AmbiguousAbbreviations[key], codes...)
			}
		}
	}
	for k, v := range idx.AmbiguousAbbreviations {
		if len(v) < 2 {
			delete(idx.AmbiguousAbbreviations, k)
		}
	}
}

// LookupTrie returns the raw trie hits for alias key at level.
func (idx *Index) LookupTrie(level models.Level, key string) []Entry {
	return idx.trieFor(level).lookup(key)
}

// CodeToName resolves a code to its canonical display name.
func (idx *Index) CodeToName(level models.Level, code string) (string, bool) {
	name, ok := idx.codeToName[level][code]
	return name, ok
}

// NameToCodes resolves a canonical name back to every code sharing it
// (usually one, but duplicate names across the country are expected).
func (idx *Index) NameToCodes(level models.Level, name string) []string {
	return idx.nameToCode[level][name]
}

// DistrictParent returns the province code owning districtCode.
func (idx *Index) DistrictParent(districtCode string) (string, bool) {
	p, ok := idx.districtParent[districtCode]
	return p, ok
}

// WardParent returns the district code owning wardCode.
func (idx *Index) WardParent(wardCode string) (string, bool) {
	p, ok := idx.wardParent[wardCode]
	return p, ok
}

// DistrictsOf returns every district code belonging to provinceCode. A nil
// provinceCode argument ("") returns nil: callers must constrain explicitly.
func (idx *Index) DistrictsOf(provinceCode string) []string {
	return idx.districtsOf[provinceCode]
}

// WardsOf returns every ward code belonging to districtCode.
func (idx *Index) WardsOf(districtCode string) []string {
	return idx.wardsOf[districtCode]
}

// AllCodes returns every code at level, sorted, for use when no hierarchical
// constraint is available yet.
func (idx *Index) AllCodes(level models.Level) []string {
	codes := make([]string, 0, len(idx.codeToName[level]))
	for c := range idx.codeToName[level] {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Tokens returns the precomputed aggressive-normalized token vector for
// code, used by the LCS and edit-distance tiers.
func (idx *Index) Tokens(code string) []string {
	return idx.tokens[code]
}

// CheckInvariants re-verifies the no-orphans invariant that must hold after
// a successful build: every district's and ward's parent code resolves to a
// name at the level above. It is not called on the query
// hot path; it exists for tests and startup self-checks.
func (idx *Index) CheckInvariants() error {
	for code, parent := range idx.districtParent {
		if _, ok := idx.codeToName[models.LevelProvince][parent]; !ok {
			return fmt.Errorf("district %q has orphan parent %q", code, parent)
		}
	}
	for code, parent := range idx.wardParent {
		if _, ok := idx.codeToName[models.LevelDistrict][parent]; !ok {
			return fmt.Errorf("ward %q has orphan parent %q", code, parent)
		}
	}
	return nil
}
