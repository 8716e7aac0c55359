package snap

import (
	"fmt"
	"strings"

	"github.com/yeojunjie/tune-transformer/harmony"
	"github.com/yeojunjie/tune-transformer/model"
	"github.com/yeojunjie/tune-transformer/render"
	"github.com/yeojunjie/tune-transformer/score"
	"github.com/yeojunjie/tune-transformer/symbol"
)

// Stats summarizes one retuning pass.
type Stats struct {
	Notes    int
	Snapped  int
	Passed   int // left untouched: no governing chord
	Warnings []string
}

// IsNoChord reports whether a chord annotation means "no governing
// chord" from here on.
func IsNoChord(text string) bool {
	t := strings.TrimSpace(text)
	return t == "" || strings.EqualFold(t, "N.C.") || strings.EqualFold(t, "NC")
}

// Retune walks a score once in order, retuning every note against the
// chord symbol governing its position. Strong-beat notes snap to the
// chord's own tones, weak-beat notes to the derived scale, both with
// the bass added. Notes under no chord pass through unchanged. Tie
// chains are unified as their last notes are reached.
func Retune(sc score.Score) Stats {
	var stats Stats
	r := render.New()

	var spec model.ChordSpec
	governed := false

	for _, seg := range sc.Segments() {
		for _, text := range seg.ChordSymbols() {
			if IsNoChord(text) {
				governed = false
				continue
			}
			parsed, leftover := symbol.Parse(text)
			if leftover != "" {
				stats.Warnings = append(stats.Warnings,
					fmt.Sprintf("chord symbol %q: ignored %q", text, leftover))
			}
			spec = parsed
			governed = true
		}

		notes := seg.Notes()
		stats.Notes += len(notes)
		if !governed {
			stats.Passed += len(notes)
			// ungoverned notes keep their pitch, but a tie chain ending
			// here still pulls its earlier, possibly retuned members
			// back to the untouched last note
			for _, n := range notes {
				Propagate(n)
			}
			continue
		}

		_, den := seg.TimeSignature()
		var m model.PitchClassMap
		if IsStrongBeat(seg.Position(), seg.MeasureStart(), den) {
			m = harmony.Expand(spec)
		} else {
			m = harmony.Scale(spec)
		}
		targets := r.AddBass(spec, r.Render(m, spec))

		for _, n := range notes {
			newPitch := Nearest(n.Pitch(), targets)
			if newPitch != n.Pitch() {
				Apply(n, newPitch)
				stats.Snapped++
			}
			Propagate(n)
		}
	}

	return stats
}
