package model

// PitchClassMap maps a scale degree (1,2,3,4,5,6,7,8,9,11,13) to its
// alteration in semitones (-2..+1). Presence of a degree means the
// chord/scale contains that tone. Degree 8 is reserved for whole-tone
// and diminished constructs.
type PitchClassMap = map[int]int

// Alter is one explicit alteration from a chord symbol, e.g. "b9" or "#11".
type Alter struct {
	Degree int
	Delta  int // -1 flat, +1 sharp
}

// ChordSpec is the structured result of parsing one chord symbol.
// At most one of the five quality flags is set; all unset means the
// default dominant/major reading. Immutable after parse.
type ChordSpec struct {
	Letter byte // 'A'..'G', 0 when the symbol carries no root (bass-only)
	Sharp  bool
	Flat   bool

	Major    bool
	Minor    bool
	Dim      bool
	HalfDim  bool
	Aug      bool
	Triangle bool // major-seventh marker ("t", "^")
	SixNine  bool
	AltFlag  bool // altered-dominant shorthand "alt"

	Extension int // 0 when absent, otherwise 5,6,7,9,11,13
	MajorAlt  int // number captured from a mid-string "maj<n>" token, 0 when absent

	Sus    []int
	Adds   []int
	Drops  []int
	Alters []Alter // parse order; later entries win per degree

	BassLetter byte // 0 when no "/X" bass override
	BassSharp  bool
	BassFlat   bool
}

// HasRoot reports whether the symbol named a root letter at all.
// "/B" parses to a spec without one.
func (c ChordSpec) HasRoot() bool {
	return c.Letter != 0
}

func (c ChordSpec) HasBass() bool {
	return c.BassLetter != 0
}
