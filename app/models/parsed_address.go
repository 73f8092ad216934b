package models

// MatchMethod records which tier ultimately resolved a ParsedAddress, following
// the "most-downgraded level wins" rule: edit distance outranks LCS, which
// outranks a pure trie hit.
type MatchMethod string

const (
	MatchMethodTrie         MatchMethod = "trie"
	MatchMethodLCS          MatchMethod = "lcs"
	MatchMethodEditDistance MatchMethod = "edit_distance"
	MatchMethodNone         MatchMethod = "none"
)

// ParsedAddress is the result of classifying one input string against a
// GazetteerIndex. It is created fresh per query and never shared.
type ParsedAddress struct {
	Raw string

	Province     string
	ProvinceCode string
	District     string
	DistrictCode string
	Ward         string
	WardCode     string

	Confidence  float64
	MatchMethod MatchMethod
	Valid       bool

	// Residual is a slot for tokens from Raw that no matcher consumed.
	// matcher.Parse never fills it, so results from this module leave it
	// empty.
	Residual string
}

// IsEmpty reports whether no level was resolved at all.
func (p *ParsedAddress) IsEmpty() bool {
	return p.Province == "" && p.District == "" && p.Ward == ""
}

// Fields returns, in hierarchy order, the set of resolved level names.
func (p *ParsedAddress) Fields() []string {
	var out []string
	if p.Province != "" {
		out = append(out, p.Province)
	}
	if p.District != "" {
		out = append(out, p.District)
	}
	if p.Ward != "" {
		out = append(out, p.Ward)
	}
	return out
}
