package pitch

// MiddleC is the conventional middle reference pitch.
const MiddleC = 60

// BassRef is one octave below MiddleC; bass pitches are built from here.
const BassRef = MiddleC - 12

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Semitone returns the pitch class of a letter with accidentals,
// normalized into [0,11]. Callers guarantee letter is A-G.
func Semitone(letter byte, sharp, flat bool) int {
	s := letterSemitones[letter]
	if sharp {
		s++
	}
	if flat {
		s--
	}
	return ((s % 12) + 12) % 12
}

// ReferencePitch returns the letter's pitch in the octave below middle C.
func ReferencePitch(letter byte, sharp, flat bool) int {
	return BassRef + Semitone(letter, sharp, flat)
}

// RootPitch returns the letter's pitch in the middle octave. Chord tones
// are rendered upward from here.
func RootPitch(letter byte, sharp, flat bool) int {
	return MiddleC + Semitone(letter, sharp, flat)
}

// tpcTable maps pitch class 0-11 to a tonal-pitch-class spelling code
// (circle-of-fifths numbering, C=14). One fixed spelling per pitch class;
// the ambiguous ones lean sharp (8 -> G#), except 3 and 10 which read
// flat (Eb, Bb). Not key-aware.
var tpcTable = [12]int{
	14, // C
	21, // C#
	16, // D
	11, // Eb
	18, // E
	13, // F
	20, // F#
	15, // G
	22, // G#
	17, // A
	12, // Bb
	19, // B
}

// Spell returns the fixed spelling code for a pitch's pitch class.
func Spell(p int) int {
	return tpcTable[((p%12)+12)%12]
}

var tpcNames = map[int]string{
	11: "Eb", 12: "Bb", 13: "F", 14: "C", 15: "G", 16: "D",
	17: "A", 18: "E", 19: "B", 20: "F#", 21: "C#", 22: "G#",
}

// Name returns a printable note name for a spelling code produced by Spell.
func Name(tpc int) string {
	return tpcNames[tpc]
}
