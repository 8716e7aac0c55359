package harmony

import (
	"github.com/yeojunjie/tune-transformer/model"
)

// Expand turns a parsed chord spec into the set of scale degrees the
// symbol implies, each with its alteration. Deterministic and total:
// any spec, however nonsensical, yields a well-formed map.
func Expand(spec model.ChordSpec) model.PitchClassMap {
	m := make(model.PitchClassMap)

	// triad plus the default alteration a seventh would take
	seventh := -1
	switch {
	case spec.Minor:
		m[1], m[3], m[5] = 0, -1, 0
	case spec.Dim:
		m[1], m[3], m[5] = 0, -1, -1
		seventh = -2
		m[7] = seventh
	case spec.HalfDim:
		m[1], m[3], m[5] = 0, -1, -1
		m[7] = seventh
	case spec.Aug:
		m[1], m[3], m[5] = 0, 0, 1
	default:
		m[1], m[3], m[5] = 0, 0, 0
		if spec.Major {
			seventh = 0
		}
	}

	if spec.Triangle {
		seventh = 0
		m[7] = 0
	}

	if spec.SixNine {
		m[6] = 0
		m[9] = 0
	}

	for _, d := range spec.Drops {
		delete(m, d)
	}

	extension := spec.Extension
	if spec.MajorAlt != 0 {
		seventh = 0
		extension = spec.MajorAlt
	}

	// cascading inclusion: 13 pulls in 11, 9 and 7
	switch extension {
	case 13:
		m[13] = 0
		fallthrough
	case 11:
		m[11] = 0
		fallthrough
	case 9:
		m[9] = 0
		fallthrough
	case 7:
		m[7] = seventh
	case 6:
		m[6] = 0
	case 5:
		delete(m, 3) // power chord
	}

	for _, d := range spec.Sus {
		m[d] = 0
		delete(m, 3)
	}

	for _, d := range spec.Adds {
		m[d] = 0
	}

	if spec.AltFlag {
		m[7] = -1
		m[5] = 1
		m[9] = 1
	}

	// explicit alterations apply last, in parse order; the last write to
	// a degree wins
	for _, a := range spec.Alters {
		m[a.Degree] = a.Delta
	}

	return m
}

// defaultScales fills the gaps a chord symbol leaves open, per quality.
// Degree 8 carries the extra tone of the whole-tone and diminished
// scales.
var (
	majorScale     = model.PitchClassMap{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0, 7: 0}
	minorScale     = model.PitchClassMap{1: 0, 2: 0, 3: -1, 4: 0, 5: 0, 6: -1, 7: -1}
	dimScale       = model.PitchClassMap{1: 0, 2: 0, 3: -1, 4: 0, 5: -1, 6: -1, 7: -2, 8: -1}
	halfDimScale   = model.PitchClassMap{1: 0, 2: 0, 3: -1, 4: 0, 5: -1, 6: -1, 7: -1}
	wholeToneScale = model.PitchClassMap{1: 0, 2: 0, 3: 0, 4: 1, 5: 1, 6: 1, 8: 1}
)

// Scale derives the background scale for a chord: the chord's own
// tones, with every unclaimed degree 1..7 filled from the quality's
// default scale. Explicit chord tones always win over generic fill.
func Scale(spec model.ChordSpec) model.PitchClassMap {
	m := Expand(spec)

	var scale model.PitchClassMap
	switch {
	case spec.Minor:
		scale = minorScale
	case spec.Dim:
		scale = dimScale
	case spec.HalfDim:
		scale = halfDimScale
	case spec.Aug:
		scale = wholeToneScale
	default:
		scale = majorScale
	}

	for d := 1; d <= 7; d++ {
		alt, ok := scale[d]
		if !ok {
			continue
		}
		if _, claimed := m[d]; claimed {
			continue
		}
		if _, claimed := m[d+7]; claimed {
			continue
		}
		m[d] = alt
	}
	if alt, ok := scale[8]; ok {
		m[8] = alt
	}

	return m
}
