package constants

import "os"

// GetOutDir is where the retune command writes its output files unless
// the caller names an explicit path.
func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// TicksPerWholeNote at the 480 PPQ resolution the engine assumes when
// classifying beats.
const TicksPerWholeNote = 1920

// MaxTieChain bounds the backward walk over a tie chain. Chains are
// acyclic by musical construction but a corrupt score should not hang
// the pass.
const MaxTieChain = 128
