// Package interval implements mod-12 interval arithmetic over pitch classes.
//
// Dist is directed: Dist(a, b) counts ascending semitones from a to b, so the
// predicates below always take the root first and the voice second.
package interval

// Dist returns the number of ascending semitones from a to b, modulo 12.
func Dist(a, b uint8) uint8 {
	if a > b {
		return (b + (12 - a)) % 12
	}
	return b - a
}

// IsThird reports a minor or major third above a.
func IsThird(a, b uint8) bool {
	d := Dist(a, b)
	return d == 3 || d == 4
}

// IsFifth reports a diminished or perfect fifth above a.
func IsFifth(a, b uint8) bool {
	d := Dist(a, b)
	return d == 6 || d == 7
}

func IsDiminishedFifth(a, b uint8) bool {
	return Dist(a, b) == 6
}

// IsSeventh reports a diminished, minor or major seventh above a.
func IsSeventh(a, b uint8) bool {
	d := Dist(a, b)
	return d >= 9 && d <= 11
}

// SemitoneDistance is the octave-aware distance between two pitches given
// as class and octave.
func SemitoneDistance(pcA, octA, pcB, octB uint8) int {
	a := 12*int(octA) + int(pcA)
	b := 12*int(octB) + int(pcB)
	if a > b {
		return a - b
	}
	return b - a
}
