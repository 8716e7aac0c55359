package score

// Note is one melodic note the engine can read and rewrite. Spelling
// is a pair of codes (sounding and written) so transposing parts keep
// their offset when the sounding spelling changes.
type Note interface {
	Pitch() int
	SetPitch(p int)
	Spelling() (sounding, written int)
	SetSpelling(sounding, written int)

	// Tie adjacency. Nil means no tie on that side. The engine only
	// ever walks backward from the end of a chain.
	TieBack() Note
	TieForward() Note
}

// Segment is one musical position in score order: zero or more notes
// and zero or more chord-symbol annotations attached there.
type Segment interface {
	Position() int
	Notes() []Note
	ChordSymbols() []string

	// Measure context from the host, not derivable from the position
	// alone.
	MeasureStart() int
	TimeSignature() (numerator, denominator int)
}

// Score yields segments across all staves and voices in score order.
type Score interface {
	Segments() []Segment
}
