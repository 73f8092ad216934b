package gazetteer

// Record is one raw gazetteer row as supplied by an external loader. Source
// format, encoding, and storage location are the caller's concern; this
// package only consumes the parsed triples.
type Record struct {
	Code       string
	Name       string
	ParentCode *string // nil for provinces
}

// GazetteerSource yields the three record sequences needed to build an
// Index. Implementations guarantee referential integrity of ParentCode;
// BuildIndex re-verifies it and fails loudly if it does not hold.
type GazetteerSource interface {
	Provinces() []Record
	Districts() []Record
	Wards() []Record
}

// SliceSource is a minimal in-memory GazetteerSource, used by this module's
// own tests and by callers who already have parsed gazetteer rows resident
// in memory. It performs no I/O.
type SliceSource struct {
	ProvinceRecords []Record
	DistrictRecords []Record
	WardRecords     []Record
}

func (s SliceSource) Provinces() []Record { return s.ProvinceRecords }
func (s SliceSource) Districts() []Record { return s.DistrictRecords }
func (s SliceSource) Wards() []Record     { return s.WardRecords }
