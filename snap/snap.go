package snap

import (
	"github.com/yeojunjie/tune-transformer/constants"
	"github.com/yeojunjie/tune-transformer/pitch"
	"github.com/yeojunjie/tune-transformer/score"
	"github.com/yeojunjie/tune-transformer/util"
)

// Nearest moves a pitch onto the closest pitch class among the
// targets. For each target, in the order the renderer produced them,
// the ascending interval is considered before the descending one; a
// candidate replaces the current best only when strictly smaller, so
// ties keep the earlier candidate. An empty target set leaves the
// pitch unchanged.
func Nearest(notePitch int, targets []int) int {
	if len(targets) == 0 {
		return notePitch
	}
	best := 0
	bestAbs := -1
	for _, target := range targets {
		up := (((target - notePitch) % 12) + 12) % 12
		for _, interval := range [2]int{up, up - 12} {
			if bestAbs < 0 || util.Abs(interval) < bestAbs {
				best = interval
				bestAbs = util.Abs(interval)
			}
		}
	}
	return notePitch + best
}

// IsStrongBeat reports whether a position falls on a beat of its
// measure. Only the time signature denominator matters: the beat unit
// is 1920/denominator ticks.
func IsStrongBeat(position, measureStart, denominator int) bool {
	if denominator <= 0 {
		return false
	}
	return (position-measureStart)%(constants.TicksPerWholeNote/denominator) == 0
}

// Apply rewrites a note's pitch and respells it from the fixed
// spelling table, preserving the written/sounding offset a transposing
// part carries.
func Apply(n score.Note, newPitch int) {
	sounding, written := n.Spelling()
	offset := written - sounding
	n.SetPitch(newPitch)
	respelled := pitch.Spell(newPitch)
	n.SetSpelling(respelled, respelled+offset)
}

// Propagate unifies a tie chain after its last note has been snapped:
// every earlier note in the chain takes the last note's pitch, so the
// chain never re-splits into different sounding pitches. Notes that
// are not the end of a chain are left for the chain's last note to
// handle. The walk is bounded in case a corrupt score loops.
func Propagate(n score.Note) {
	if n.TieBack() == nil || n.TieForward() != nil {
		return
	}
	target := n.Pitch()
	prev := n.TieBack()
	for steps := 0; prev != nil && steps < constants.MaxTieChain; steps++ {
		if prev.Pitch() != target {
			Apply(prev, target)
		}
		prev = prev.TieBack()
	}
}
