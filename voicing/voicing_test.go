package voicing

import (
	"testing"

	"github.com/jsphweid/twelvetet/pitch"
	"github.com/stretchr/testify/assert"
)

func p(s string) pitch.Pitch {
	res, err := pitch.Parse(s)
	if err != nil {
		panic(err)
	}
	return res
}

func TestRangeBoundaries(t *testing.T) {
	cases := []struct {
		voice Voice
		note  string
		ok    bool
	}{
		{Bass, "D2", false},
		{Bass, "E2", true},
		{Bass, "C4", true},
		{Bass, "C#4", false},
		{Bass, "C5", false},
		{Tenor, "D3", false},
		{Tenor, "Eb3", true},
		{Tenor, "F#4", true},
		{Tenor, "G4", false},
		{Tenor, "C2", false},
		{Alto, "F#3", false},
		{Alto, "G3", true},
		{Alto, "C#5", true},
		{Alto, "D5", false},
		{Soprano, "C#4", false},
		{Soprano, "D4", true},
		{Soprano, "F#5", true},
		{Soprano, "G5", false},
		{Soprano, "C6", false},
	}
	for _, c := range cases {
		t.Run(c.voice.String()+"/"+c.note, func(t *testing.T) {
			err := CheckRange(c.voice, p(c.note))
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrVoiceOutOfRange)
			}
		})
	}
}

func TestRangeRejectsClassesOutsideOctave(t *testing.T) {
	for _, v := range Voices {
		assert.ErrorIs(t, CheckRange(v, pitch.New(262, 12, 4)), ErrVoiceOutOfRange, v.String())
	}
}

func TestValidateAcceptsCloseAndOpenPosition(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(Validate(p("E4"), p("C4"), p("G3"), p("C3")))
	assert.NoError(Validate(p("G4"), p("E4"), p("C4"), p("C3")))
	assert.NoError(Validate(p("C5"), p("G4"), p("E4"), p("C3")))
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name                    string
		soprano, alto, tenor, b string
		want                    error
	}{
		{"bass too low", "E4", "C4", "G3", "C2", ErrVoiceOutOfRange},
		{"soprano too high", "A5", "C5", "E4", "C3", ErrVoiceOutOfRange},
		{"bass tenor by mod-12 distance", "B4", "G4", "D4", "E3", ErrVoiceSpacingExceeded},
		{"tenor alto over an octave", "C5", "A4", "G3", "C3", ErrVoiceSpacingExceeded},
		{"alto soprano over an octave", "F5", "D4", "Bb3", "Bb2", ErrVoiceSpacingExceeded},
		{"bass tenor two octaves", "G4", "E4", "E4", "E2", ErrVoiceSpacingExceeded},
		{"tenor above alto in octave", "G4", "C4", "E4", "C3", ErrVoiceCrossing},
		{"bass above tenor by octave", "E4", "C4", "G3", "C4", ErrVoiceCrossing},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(p(c.soprano), p(c.alto), p(c.tenor), p(c.b))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestBassTenorSpacingIsModular(t *testing.T) {
	assert := assert.New(t)
	// G3 up to C4 is a fourth and passes.
	assert.NoError(CheckSpacing(Bass, p("G3"), Tenor, p("C4")))
	// C3 up to G4 is a twelfth, but mod-12 it is only a fifth.
	assert.NoError(CheckSpacing(Bass, p("C3"), Tenor, p("G4")))
	// The same pair in the upper voices is judged by true distance.
	assert.ErrorIs(CheckSpacing(Tenor, p("C3"), Alto, p("G4")), ErrVoiceSpacingExceeded)
	assert.NoError(CheckSpacing(Tenor, p("E3"), Alto, p("E4")))
}
