package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeojunjie/tune-transformer/score"
)

func TestNearestPrefersSmallestInterval(t *testing.T) {
	assert := assert.New(t)
	// C# against C major: -1 to C beats +3 to E
	assert.Equal(60, Nearest(61, []int{60, 64, 67}))
	assert.Equal(64, Nearest(65, []int{60, 64, 67}))
	assert.Equal(67, Nearest(66, []int{60, 64, 67}))
}

func TestNearestWorksAcrossOctaves(t *testing.T) {
	assert := assert.New(t)
	// targets are pitch classes: 85 (C#6) still snaps by class
	assert.Equal(84, Nearest(85, []int{60, 64, 67}))
	assert.Equal(36, Nearest(37, []int{60, 64, 67}))
}

func TestNearestTieKeepsEarlierCandidate(t *testing.T) {
	assert := assert.New(t)
	// D is 2 from both C (down) and E (up); C came first in the scan,
	// and for C the ascending interval +10 loses to descending -2
	assert.Equal(60, Nearest(62, []int{60, 64, 67}))
	// ascending beats descending for the same target
	assert.Equal(66, Nearest(60, []int{66}))
}

func TestNearestOnTarget(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(64, Nearest(64, []int{60, 64, 67}))
}

func TestNearestEmptyTargetsIsNoOp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(61, Nearest(61, nil))
}

func TestIsStrongBeat(t *testing.T) {
	assert := assert.New(t)
	// 4/4: beat unit is 480 ticks
	assert.True(IsStrongBeat(0, 0, 4))
	assert.True(IsStrongBeat(480, 0, 4))
	assert.False(IsStrongBeat(240, 0, 4))
	// 6/8: beat unit is 240 ticks
	assert.True(IsStrongBeat(240, 0, 8))
	// measure start offsets the grid
	assert.True(IsStrongBeat(2400, 1920, 4))
	assert.False(IsStrongBeat(2520, 1920, 4))
}

func TestRetuneSnapsAgainstChordOnStrongBeat(t *testing.T) {
	sc := score.NewMemScore(4, 4)
	sc.AddSymbol(0, "C")
	n := sc.AddNote(0, 61, 480)

	stats := Retune(sc)

	assert := assert.New(t)
	assert.Equal(60, n.Pitch())
	assert.Equal(1, stats.Snapped)
}

func TestRetuneSnapsAgainstScaleOnWeakBeat(t *testing.T) {
	sc := score.NewMemScore(4, 4)
	sc.AddSymbol(0, "C")
	// off the beat: F# lands on F, a scale tone, instead of the chord's G
	n := sc.AddNote(240, 66, 240)

	Retune(sc)

	assert := assert.New(t)
	assert.Equal(65, n.Pitch())
}

func TestRetuneLeavesNotesBeforeAnyChord(t *testing.T) {
	sc := score.NewMemScore(4, 4)
	n := sc.AddNote(0, 61, 480)
	sc.AddSymbol(480, "C")
	m := sc.AddNote(480, 61, 480)

	stats := Retune(sc)

	assert := assert.New(t)
	assert.Equal(61, n.Pitch())
	assert.Equal(60, m.Pitch())
	assert.Equal(1, stats.Passed)
}

func TestRetuneNoChordBoundary(t *testing.T) {
	sc := score.NewMemScore(4, 4)
	sc.AddSymbol(0, "C")
	a := sc.AddNote(0, 61, 480)
	sc.AddSymbol(480, "N.C.")
	b := sc.AddNote(480, 61, 480)
	sc.AddSymbol(960, "G7")
	c := sc.AddNote(960, 66, 480)

	Retune(sc)

	assert := assert.New(t)
	assert.Equal(60, a.Pitch())
	assert.Equal(61, b.Pitch()) // untouched between N.C. and the next symbol
	assert.Equal(67, c.Pitch())
}

func TestRetunePropagatesTieChain(t *testing.T) {
	sc := score.NewMemScore(4, 4)
	sc.AddSymbol(0, "C")
	a := sc.AddNote(0, 64, 480)
	b := sc.AddNote(480, 64, 480)
	sc.AddSymbol(960, "F")
	c := sc.AddNote(960, 64, 480)
	score.Tie(a, b)
	score.Tie(b, c)

	Retune(sc)

	assert := assert.New(t)
	// c snapped to F's chord tone 65; the whole chain follows
	assert.Equal(65, c.Pitch())
	assert.Equal(65, b.Pitch())
	assert.Equal(65, a.Pitch())
}

func TestRetuneTieChainEndingUnderNoChord(t *testing.T) {
	sc := score.NewMemScore(4, 4)
	sc.AddSymbol(0, "C")
	a := sc.AddNote(0, 61, 480)
	sc.AddSymbol(480, "N.C.")
	b := sc.AddNote(480, 61, 480)
	score.Tie(a, b)

	Retune(sc)

	assert := assert.New(t)
	// a snapped to 60 under the C chord, but the chain ends on an
	// ungoverned note that keeps its pitch, so the chain follows b
	assert.Equal(61, b.Pitch())
	assert.Equal(61, a.Pitch())
}

func TestRetuneRespellsSnappedNotes(t *testing.T) {
	sc := score.NewMemScore(4, 4)
	sc.AddSymbol(0, "B")
	n := sc.AddNote(0, 62, 480)
	// written spelling sits a fixed offset above sounding
	n.SetSpelling(16, 18)

	Retune(sc)

	assert := assert.New(t)
	assert.Equal(63, n.Pitch()) // D# of the B triad
	sounding, written := n.Spelling()
	assert.Equal(2, written-sounding)
}

func TestRetuneWarnsOnTrailingGarbage(t *testing.T) {
	sc := score.NewMemScore(4, 4)
	sc.AddSymbol(0, "C7wat")
	n := sc.AddNote(0, 61, 480)

	stats := Retune(sc)

	assert := assert.New(t)
	assert.Equal(60, n.Pitch()) // still retuned from the matched part
	assert.Len(stats.Warnings, 1)
}

func TestIsNoChord(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsNoChord("N.C."))
	assert.True(IsNoChord("n.c."))
	assert.True(IsNoChord("NC"))
	assert.True(IsNoChord(""))
	assert.False(IsNoChord("C"))
}
