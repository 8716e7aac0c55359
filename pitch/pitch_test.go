package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemitone(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Semitone('C', false, false))
	assert.Equal(1, Semitone('C', true, false))
	assert.Equal(11, Semitone('C', false, true))
	assert.Equal(11, Semitone('B', false, false))
	assert.Equal(0, Semitone('B', true, false))
	assert.Equal(6, Semitone('F', true, false))
	assert.Equal(6, Semitone('G', false, true))
}

func TestReferencePitches(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(48, ReferencePitch('C', false, false))
	assert.Equal(59, ReferencePitch('B', false, false))
	assert.Equal(60, RootPitch('C', false, false))
	assert.Equal(69, RootPitch('A', false, false))
}

func TestSpellIsFixed(t *testing.T) {
	assert := assert.New(t)
	// the pitch between G and A always spells sharp
	assert.Equal(Spell(68), Spell(56))
	assert.Equal("G#", Name(Spell(68)))
	assert.Equal("Eb", Name(Spell(63)))
	assert.Equal("C", Name(Spell(60)))
	assert.Equal("C", Name(Spell(-12)))
}
