package score

import (
	"sort"

	"github.com/yeojunjie/tune-transformer/constants"
)

// MemNote is the in-memory Note used by tests and the MIDI adapter.
type MemNote struct {
	pitch    int
	sounding int
	written  int
	back     *MemNote
	forward  *MemNote

	// Ticks, Duration and Velocity are not part of the Note interface;
	// the MIDI adapter needs them to write files back out.
	Ticks    int
	Duration int
	Velocity uint8
}

func (n *MemNote) Pitch() int     { return n.pitch }
func (n *MemNote) SetPitch(p int) { n.pitch = p }

func (n *MemNote) Spelling() (int, int) { return n.sounding, n.written }
func (n *MemNote) SetSpelling(sounding, written int) {
	n.sounding = sounding
	n.written = written
}

func (n *MemNote) TieBack() Note {
	if n.back == nil {
		return nil
	}
	return n.back
}

func (n *MemNote) TieForward() Note {
	if n.forward == nil {
		return nil
	}
	return n.forward
}

type memSegment struct {
	position int
	notes    []*MemNote
	symbols  []string
	score    *MemScore
}

func (s *memSegment) Position() int { return s.position }

func (s *memSegment) Notes() []Note {
	notes := make([]Note, len(s.notes))
	for i, n := range s.notes {
		notes[i] = n
	}
	return notes
}

func (s *memSegment) ChordSymbols() []string { return s.symbols }

func (s *memSegment) MeasureStart() int {
	return s.position - s.position%s.score.measureTicks()
}

func (s *memSegment) TimeSignature() (int, int) {
	return s.score.numerator, s.score.denominator
}

// MemScore holds notes and chord symbols keyed by tick position, under
// a single time signature.
type MemScore struct {
	numerator   int
	denominator int
	segments    map[int]*memSegment
}

func NewMemScore(numerator, denominator int) *MemScore {
	return &MemScore{
		numerator:   numerator,
		denominator: denominator,
		segments:    make(map[int]*memSegment),
	}
}

func (m *MemScore) measureTicks() int {
	return constants.TicksPerWholeNote * m.numerator / m.denominator
}

func (m *MemScore) segmentAt(position int) *memSegment {
	seg, ok := m.segments[position]
	if !ok {
		seg = &memSegment{position: position, score: m}
		m.segments[position] = seg
	}
	return seg
}

// AddNote places a note at a tick position and returns it so callers
// can tie it to neighbors.
func (m *MemScore) AddNote(position, pitch, duration int) *MemNote {
	n := &MemNote{pitch: pitch, Ticks: position, Duration: duration, Velocity: 80}
	seg := m.segmentAt(position)
	seg.notes = append(seg.notes, n)
	return n
}

// AddSymbol attaches a chord symbol annotation at a tick position.
func (m *MemScore) AddSymbol(position int, text string) {
	seg := m.segmentAt(position)
	seg.symbols = append(seg.symbols, text)
}

// Tie links two notes as one sounding pitch across a rhythmic split.
func Tie(from, to *MemNote) {
	from.forward = to
	to.back = from
}

func (m *MemScore) Segments() []Segment {
	positions := make([]int, 0, len(m.segments))
	for p := range m.segments {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	segments := make([]Segment, 0, len(positions))
	for _, p := range positions {
		segments = append(segments, m.segments[p])
	}
	return segments
}

// AllNotes returns every note in score order; the MIDI adapter uses it
// when writing retuned files.
func (m *MemScore) AllNotes() []*MemNote {
	var notes []*MemNote
	for _, seg := range m.Segments() {
		notes = append(notes, seg.(*memSegment).notes...)
	}
	return notes
}
