package midiscore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/yeojunjie/tune-transformer/score"
)

// Standalone scores carry their notes on this grid regardless of the
// file's own resolution.
const resolution = 480

// Load reads a Standard MIDI File into an in-memory score. Note on/off
// pairs become notes, meta marker and text events become chord-symbol
// annotations, and the first meta time signature sets the measure
// grid. MIDI has no ties, so every note is a chain of one.
func Load(path string) (*score.MemScore, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return Parse(dat)
}

// Parse builds a score from raw SMF bytes.
func Parse(dat []byte) (s *score.MemScore, e error) {
	// the smf reader panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		switch r := recover().(type) {
		case nil:
		case string:
			e = errors.New(r)
		default:
			e = fmt.Errorf("parsing midi file: %v", r)
		}
	}()

	mf, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}

	fileRes := int64(resolution)
	if metric, ok := mf.TimeFormat.(smf.MetricTicks); ok {
		fileRes = int64(metric.Resolution())
	}
	rescale := func(ticks int64) int {
		return int(ticks * resolution / fileRes)
	}

	numerator, denominator := 4, 4
	haveMeter := false
	for _, track := range mf.Tracks {
		for _, evt := range track {
			var num, den uint8
			if evt.Message.GetMetaMeter(&num, &den) && !haveMeter {
				numerator, denominator = int(num), int(den)
				haveMeter = true
			}
		}
	}

	sc := score.NewMemScore(numerator, denominator)

	for _, track := range mf.Tracks {
		var absTicks int64
		started := make(map[uint8]int64)
		velocities := make(map[uint8]uint8)
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			var channel, key, velocity uint8
			var text string
			switch {
			case evt.Message.GetNoteStart(&channel, &key, &velocity):
				started[key] = absTicks
				velocities[key] = velocity
			case evt.Message.GetNoteEnd(&channel, &key):
				start, ok := started[key]
				if !ok {
					continue
				}
				delete(started, key)
				n := sc.AddNote(rescale(start), int(key), rescale(absTicks-start))
				n.Velocity = velocities[key]
			case evt.Message.GetMetaMarker(&text),
				evt.Message.GetMetaText(&text):
				sc.AddSymbol(rescale(absTicks), text)
			}
		}
	}

	return sc, nil
}

// event carries one outgoing message with an absolute tick so the
// track can be delta-encoded after sorting.
type event struct {
	ticks int
	order int // meta < note-off < note-on at the same tick
	msg   smf.Message
}

// ToSMF renders a score back into a single-track SMF at 480 PPQ,
// preserving chord-symbol annotations as markers.
func ToSMF(sc *score.MemScore) *smf.SMF {
	var events []event

	for _, seg := range sc.Segments() {
		for _, text := range seg.ChordSymbols() {
			events = append(events, event{seg.Position(), 0, smf.MetaMarker(text)})
		}
	}
	for _, n := range sc.AllNotes() {
		key := uint8(n.Pitch())
		events = append(events, event{n.Ticks, 2, smf.Message(midi.NoteOn(0, key, n.Velocity))})
		events = append(events, event{n.Ticks + n.Duration, 1, smf.Message(midi.NoteOff(0, key))})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ticks != events[j].ticks {
			return events[i].ticks < events[j].ticks
		}
		return events[i].order < events[j].order
	})

	var track smf.Track
	num, den := 4, 4
	if segs := sc.Segments(); len(segs) > 0 {
		num, den = segs[0].TimeSignature()
	}
	track.Add(0, smf.MetaMeter(uint8(num), uint8(den)))
	prev := 0
	for _, evt := range events {
		track.Add(uint32(evt.ticks-prev), evt.msg)
		prev = evt.ticks
	}
	track.Close(0)

	var out smf.SMF
	out.TimeFormat = smf.MetricTicks(resolution)
	out.Tracks = append(out.Tracks, track)
	return &out
}

// Save writes a score to a .mid file.
func Save(sc *score.MemScore, path string) error {
	var buf bytes.Buffer
	if _, err := ToSMF(sc).WriteTo(&buf); err != nil {
		return fmt.Errorf("encoding midi file: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}
