package render

import (
	"github.com/yeojunjie/tune-transformer/model"
	"github.com/yeojunjie/tune-transformer/pitch"
	"github.com/yeojunjie/tune-transformer/util"
)

// degreeOffsets is the semitone distance of each scale degree from the
// root, unaltered.
var degreeOffsets = map[int]int{
	1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11,
	8: 12, 9: 14, 10: 16, 11: 17, 12: 19, 13: 21,
}

// Renderer turns pitch-class maps into absolute pitch sequences. It
// remembers the most recently rendered spec so a bass-only symbol like
// "/B" can reuse the previous root. Create one per retuning pass; the
// fallback never leaks across passes.
type Renderer struct {
	last    model.ChordSpec
	hasLast bool
}

func New() *Renderer {
	return &Renderer{}
}

// resolve returns the spec with its root filled in from the previous
// render when the symbol named none.
func (r *Renderer) resolve(spec model.ChordSpec) (model.ChordSpec, bool) {
	if spec.HasRoot() {
		return spec, true
	}
	if !r.hasLast {
		return spec, false
	}
	spec.Letter = r.last.Letter
	spec.Sharp = r.last.Sharp
	spec.Flat = r.last.Flat
	return spec, true
}

// Render maps each degree to root reference pitch + degree offset +
// alteration, in ascending degree order. A spec with no root and no
// prior render yields an empty sequence.
func (r *Renderer) Render(m model.PitchClassMap, spec model.ChordSpec) []int {
	spec, ok := r.resolve(spec)
	if !ok {
		return nil
	}
	r.last = spec
	r.hasLast = true

	root := pitch.RootPitch(spec.Letter, spec.Sharp, spec.Flat)
	var pitches []int
	for _, d := range util.SortedKeys(m) {
		offset, known := degreeOffsets[d]
		if !known {
			continue
		}
		pitches = append(pitches, root+offset+m[d])
	}
	return pitches
}

// AddBass prepends the chord's bass pitch: the "/X" override when
// present, else the root, an octave below middle. A bass that lands in
// the octave starting four semitones above middle drops down an
// octave. The bass is skipped when it already equals the lowest
// rendered pitch.
func (r *Renderer) AddBass(spec model.ChordSpec, pitches []int) []int {
	letter, sharp, flat := spec.BassLetter, spec.BassSharp, spec.BassFlat
	if !spec.HasBass() {
		resolved, ok := r.resolve(spec)
		if !ok {
			return pitches
		}
		letter, sharp, flat = resolved.Letter, resolved.Sharp, resolved.Flat
	}

	bass := pitch.ReferencePitch(letter, sharp, flat)
	if bass >= pitch.MiddleC+4 {
		bass -= 12
	}
	if len(pitches) > 0 && pitches[0] == bass {
		return pitches
	}
	return append([]int{bass}, pitches...)
}
