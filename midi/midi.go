// Package midi reads four-voice chords out of standard MIDI files and writes
// chords back as MIDI.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/twelvetet/chord"
	"github.com/jsphweid/twelvetet/pitch"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	channel         = 0
	velocity        = 100
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// smf panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}
	return res, nil
}

// WriteChord writes h as a single track SMF holding all four voices for the
// given number of seconds.
func WriteChord(w io.Writer, h chord.SATB, seconds uint32) error {
	if seconds == 0 {
		return errors.New("chord must last at least one second")
	}
	s := smf.New()
	ticks := smf.MetricTicks(ticksPerQuarter)
	s.TimeFormat = ticks

	var tr smf.Track
	// one quarter note per second
	tr.Add(0, smf.MetaTempo(60))
	tr.Add(0, smf.MetaTrackSequenceName(h.String()))

	keys := []uint8{h.Bass().MIDIKey(), h.Tenor().MIDIKey(), h.Alto().MIDIKey(), h.Soprano().MIDIKey()}
	for _, key := range keys {
		tr.Add(0, gomidi.NoteOn(channel, key, velocity))
	}
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = ticks.Ticks4th() * seconds
		}
		tr.Add(delta, gomidi.NoteOff(channel, key))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("adding track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing smf: %w", err)
	}
	return nil
}

func WriteChordFile(path string, h chord.SATB, seconds uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create %v: %w", path, err)
	}
	if err := WriteChord(f, h, seconds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %v: %w", path, err)
	}
	return nil
}

// Pitches converts MIDI keys into pitches with equal-tempered frequencies.
func Pitches(keys []uint8) []pitch.Pitch {
	res := make([]pitch.Pitch, len(keys))
	for i, k := range keys {
		res[i] = pitch.FromMIDI(k)
	}
	return res
}
