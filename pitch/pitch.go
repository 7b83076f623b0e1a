// Package pitch represents pitches where the octave is divided into twelve
// equally tempered parts.
package pitch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	A440Frequency         = 440.0
	A440Octave            = 4
	A440HalfStepsFromZero = 45

	// SemitoneFrequencyRatio is kept as a literal rather than 2^(1/12) so
	// frequencies at the extreme octaves stay bit-identical.
	SemitoneFrequencyRatio = 1.059463094

	NumClasses = 12
)

var ErrInvalidName = errors.New("pitch: invalid note name")

type Pitch struct {
	frequency      float64
	pitchClass     uint8
	octave         uint8
	halfStepsFrom0 uint32
}

// New creates a pitch. The frequency is taken as given and is not checked
// against the pitch class and octave.
func New(frequency float64, pitchClass uint8, octave uint8) Pitch {
	return Pitch{
		frequency:      frequency,
		pitchClass:     pitchClass,
		octave:         octave,
		halfStepsFrom0: ComputeHalfStepsFromZero(pitchClass, octave),
	}
}

// FromClass creates a pitch whose frequency is the equal-tempered value for
// the pitch class and octave.
func FromClass(pitchClass uint8, octave uint8) Pitch {
	return New(ComputeFrequency(pitchClass, octave), pitchClass, octave)
}

func (p Pitch) Frequency() float64 {
	return p.frequency
}

func (p Pitch) Class() uint8 {
	return p.pitchClass
}

func (p Pitch) Octave() uint8 {
	return p.octave
}

func (p Pitch) HalfStepsFromZero() uint32 {
	return p.halfStepsFrom0
}

func (p Pitch) String() string {
	return Name(p.pitchClass) + strconv.Itoa(int(p.octave))
}

// ComputeHalfStepsFromZero returns the number of half steps between the zero
// reference and the given pitch class and octave. Octave 0 has no multiplier.
func ComputeHalfStepsFromZero(pitchClass uint8, octave uint8) uint32 {
	if octave > 0 {
		return (uint32(octave)-1)*12 + uint32(pitchClass)
	}
	return uint32(pitchClass)
}

func ComputeFrequency(pitchClass uint8, octave uint8) float64 {
	semitones := int(ComputeHalfStepsFromZero(pitchClass, octave)) - A440HalfStepsFromZero
	return A440Frequency * math.Pow(SemitoneFrequencyRatio, float64(semitones))
}

var names = [NumClasses]string{
	"C", "C#/Db", "D", "D#/Eb", "E", "F", "F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B",
}

// Name returns the note name for a pitch class, with both spellings for the
// black keys.
func Name(pitchClass uint8) string {
	if int(pitchClass) >= NumClasses {
		return "?"
	}
	return names[pitchClass]
}

var letters = map[byte]uint8{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseClass parses a pitch class spelling such as "C", "f#", "Bb" or
// "C#/Db".
func ParseClass(s string) (uint8, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty pitch class", ErrInvalidName)
	}
	base, ok := letters[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	pc := int(base)
	for _, r := range s[1:] {
		switch r {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidName, s)
		}
	}
	return uint8((pc + NumClasses) % NumClasses), nil
}

// Parse parses a note name followed by an octave number, e.g. "Eb4" or
// "C#/Db3". The frequency is computed from the class and octave.
func Parse(s string) (Pitch, error) {
	i := strings.IndexAny(s, "0123456789")
	if i <= 0 {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	pc, err := ParseClass(s[:i])
	if err != nil {
		return Pitch{}, err
	}
	oct, err := strconv.ParseUint(s[i:], 10, 8)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: bad octave in %q", ErrInvalidName, s)
	}
	return FromClass(pc, uint8(oct)), nil
}

// FromMIDI converts a MIDI key number to a pitch. Key 60 is C4. Keys below 12
// have no non-negative octave and are folded into octave 0.
func FromMIDI(key uint8) Pitch {
	oct := key / NumClasses
	if oct > 0 {
		oct--
	}
	return FromClass(key%NumClasses, oct)
}

// MIDIKey returns the MIDI key number of the pitch, clamped to 0-127.
func (p Pitch) MIDIKey() uint8 {
	k := (int(p.octave)+1)*NumClasses + int(p.pitchClass)
	if k > 127 {
		return 127
	}
	return uint8(k)
}
