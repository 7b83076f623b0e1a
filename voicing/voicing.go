// Package voicing checks that each of the four SATB voices sits inside its
// idiomatic register and that adjacent voices are not spaced too far apart.
package voicing

import (
	"errors"
	"fmt"

	"github.com/jsphweid/twelvetet/interval"
	"github.com/jsphweid/twelvetet/pitch"
)

var (
	ErrVoiceOutOfRange      = errors.New("voice out of range")
	ErrVoiceSpacingExceeded = errors.New("voice spacing exceeded")
	ErrVoiceCrossing        = errors.New("voices cross")
)

type Voice uint8

const (
	Bass Voice = iota
	Tenor
	Alto
	Soprano
)

var Voices = []Voice{Bass, Tenor, Alto, Soprano}

func (v Voice) String() string {
	switch v {
	case Bass:
		return "bass"
	case Tenor:
		return "tenor"
	case Alto:
		return "alto"
	case Soprano:
		return "soprano"
	}
	return fmt.Sprintf("voice(%d)", uint8(v))
}

// Range is a register expressed as an octave span with pitch class cutoffs
// at the two boundary octaves.
type Range struct {
	LowOctave  uint8
	HighOctave uint8
	Floor      uint8
	Ceiling    uint8
}

var Ranges = map[Voice]Range{
	Bass:    {LowOctave: 2, HighOctave: 4, Floor: 4, Ceiling: 0},
	Tenor:   {LowOctave: 3, HighOctave: 4, Floor: 3, Ceiling: 6},
	Alto:    {LowOctave: 3, HighOctave: 5, Floor: 7, Ceiling: 1},
	Soprano: {LowOctave: 4, HighOctave: 5, Floor: 2, Ceiling: 6},
}

func (r Range) Contains(p pitch.Pitch) bool {
	oct, pc := p.Octave(), p.Class()
	switch {
	case pc >= pitch.NumClasses:
		return false
	case oct < r.LowOctave || oct > r.HighOctave:
		return false
	case oct == r.LowOctave && pc < r.Floor:
		return false
	case oct == r.HighOctave && pc > r.Ceiling:
		return false
	}
	return true
}

func CheckRange(v Voice, p pitch.Pitch) error {
	if !Ranges[v].Contains(p) {
		return fmt.Errorf("%w: %v at %v", ErrVoiceOutOfRange, v, p)
	}
	return nil
}

// CheckSpacing checks a pair of adjacent voices, lower first. The bass-tenor
// pair one octave apart is compared by mod-12 distance with a threshold of a
// fifth; the upper pairs use the true semitone distance against an octave.
func CheckSpacing(lowerVoice Voice, lower pitch.Pitch, upperVoice Voice, upper pitch.Pitch) error {
	lo, hi := lower.Octave(), upper.Octave()
	switch {
	case lo == hi:
		if lower.Class() > upper.Class() {
			return fmt.Errorf("%w: %v %v above %v %v", ErrVoiceCrossing, lowerVoice, lower, upperVoice, upper)
		}
		return nil
	case lo > hi:
		return fmt.Errorf("%w: %v %v above %v %v", ErrVoiceCrossing, lowerVoice, lower, upperVoice, upper)
	case hi-lo > 1:
		return fmt.Errorf("%w: %v %v and %v %v", ErrVoiceSpacingExceeded, lowerVoice, lower, upperVoice, upper)
	}

	if lowerVoice == Bass {
		if interval.Dist(lower.Class(), upper.Class()) > 7 {
			return fmt.Errorf("%w: %v %v and %v %v", ErrVoiceSpacingExceeded, lowerVoice, lower, upperVoice, upper)
		}
		return nil
	}
	if interval.SemitoneDistance(lower.Class(), lo, upper.Class(), hi) > 12 {
		return fmt.Errorf("%w: %v %v and %v %v", ErrVoiceSpacingExceeded, lowerVoice, lower, upperVoice, upper)
	}
	return nil
}

// Validate checks the four ranges bottom-up and then the three adjacent
// pairs, returning the first failure.
func Validate(soprano, alto, tenor, bass pitch.Pitch) error {
	voices := [4]pitch.Pitch{bass, tenor, alto, soprano}
	for i, v := range Voices {
		if err := CheckRange(v, voices[i]); err != nil {
			return err
		}
	}
	for i := 0; i < len(Voices)-1; i++ {
		if err := CheckSpacing(Voices[i], voices[i], Voices[i+1], voices[i+1]); err != nil {
			return err
		}
	}
	return nil
}
