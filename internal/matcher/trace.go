package matcher

import "github.com/ledinhtuan/vnaddr/app/models"

// LevelSnapshot is a point-in-time view of one level's resolution for Trace.
type LevelSnapshot struct {
	Name   string
	Code   string
	Source models.MatchMethod
}

// ResultSnapshot captures all three levels at a cascade checkpoint.
type ResultSnapshot struct {
	Province LevelSnapshot
	District LevelSnapshot
	Ward     LevelSnapshot
}

func snapshot(w *workingResult) ResultSnapshot {
	toSnap := func(r levelResult) LevelSnapshot {
		return LevelSnapshot{Name: r.name, Code: r.code, Source: r.source}
	}
	return ResultSnapshot{
		Province: toSnap(w.province),
		District: toSnap(w.district),
		Ward:     toSnap(w.ward),
	}
}

// Trace records, in order, the decisions ParseTraced made: normalized
// tokens, Tier 1's raw hits, the state after handoff validation, and the
// state after each subsequent tier. It exists for debugging, not for
// production hot paths.
type Trace struct {
	Input            string
	NormalizedTokens []string
	Tier1            tierHits
	AfterHandoff     ResultSnapshot
	AfterLCS         ResultSnapshot
	AfterEditDistance ResultSnapshot
}
