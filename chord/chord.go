// Package chord validates four-part (SATB) harmony and holds the resulting
// immutable chord value.
package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/twelvetet/pitch"
	"github.com/jsphweid/twelvetet/voicing"
)

// SATB is a four-voice chord over a declared root. Values are immutable; use
// With to get a changed, re-validated copy.
type SATB struct {
	root    uint8
	soprano pitch.Pitch
	alto    pitch.Pitch
	tenor   pitch.Pitch
	bass    pitch.Pitch
	classes pitch.ClassSet
	shape   Shape
}

// New builds a chord after checking voice ranges, spacing and harmonic
// function. The first failing check is returned.
func New(root uint8, soprano, alto, tenor, bass pitch.Pitch) (SATB, error) {
	if err := voicing.Validate(soprano, alto, tenor, bass); err != nil {
		return SATB{}, err
	}
	shape, err := Classify(root, bass.Class(), tenor.Class(), alto.Class(), soprano.Class())
	if err != nil {
		return SATB{}, err
	}
	h := NewUnchecked(root, soprano, alto, tenor, bass)
	h.shape = shape
	return h, nil
}

// NewUnchecked builds a chord without any validation, for deliberately
// non-traditional voicings.
func NewUnchecked(root uint8, soprano, alto, tenor, bass pitch.Pitch) SATB {
	var classes pitch.ClassSet
	for _, p := range []pitch.Pitch{soprano, alto, tenor, bass} {
		classes = classes.Add(p.Class())
	}
	return SATB{
		root:    root,
		soprano: soprano,
		alto:    alto,
		tenor:   tenor,
		bass:    bass,
		classes: classes,
	}
}

func (h SATB) Root() uint8 {
	return h.root
}

func (h SATB) Soprano() pitch.Pitch {
	return h.soprano
}

func (h SATB) Alto() pitch.Pitch {
	return h.alto
}

func (h SATB) Tenor() pitch.Pitch {
	return h.tenor
}

func (h SATB) Bass() pitch.Pitch {
	return h.bass
}

func (h SATB) Voice(v voicing.Voice) pitch.Pitch {
	switch v {
	case voicing.Soprano:
		return h.soprano
	case voicing.Alto:
		return h.alto
	case voicing.Tenor:
		return h.tenor
	}
	return h.bass
}

// Classes is the set of distinct pitch classes sounded by the four voices.
func (h SATB) Classes() pitch.ClassSet {
	return h.classes
}

// Shape is ShapeUnknown for chords built with NewUnchecked.
func (h SATB) Shape() Shape {
	return h.shape
}

// Frequencies returns the voice frequencies from soprano down to bass.
func (h SATB) Frequencies() []float64 {
	return []float64{
		h.soprano.Frequency(),
		h.alto.Frequency(),
		h.tenor.Frequency(),
		h.bass.Frequency(),
	}
}

// With returns a validated copy with one voice replaced.
func (h SATB) With(v voicing.Voice, p pitch.Pitch) (SATB, error) {
	s, a, t, b := h.soprano, h.alto, h.tenor, h.bass
	switch v {
	case voicing.Soprano:
		s = p
	case voicing.Alto:
		a = p
	case voicing.Tenor:
		t = p
	case voicing.Bass:
		b = p
	default:
		return SATB{}, fmt.Errorf("unknown voice %v", v)
	}
	return New(h.root, s, a, t, b)
}

// Key identifies the chord by root and sorted classes, e.g. "0:0-4-7".
func (h SATB) Key() string {
	return CreateChordKey(h.root, h.classes.Classes())
}

func CreateChordKey(root uint8, classes []uint8) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v:", root)
	var set pitch.ClassSet
	for _, c := range classes {
		set = set.Add(c)
	}
	for i, c := range set.Classes() {
		if i > 0 {
			sb.WriteString("-")
		}
		fmt.Fprintf(&sb, "%v", c)
	}
	return sb.String()
}

func (h SATB) String() string {
	return fmt.Sprintf("%v [S %v, A %v, T %v, B %v]", pitch.Name(h.root), h.soprano, h.alto, h.tenor, h.bass)
}
