package chord

import (
	"errors"
	"fmt"

	"github.com/jsphweid/twelvetet/interval"
	"github.com/jsphweid/twelvetet/pitch"
)

var (
	ErrNoRootPresent              = errors.New("no voice sounds the root")
	ErrInvalidVoiceCount          = errors.New("invalid number of distinct pitch classes")
	ErrInvalidBassFunction        = errors.New("bass is not the root, third or fifth")
	ErrIncompleteHarmonicFunction = errors.New("harmonic function missing")
	ErrInvalidDoubling            = errors.New("invalid doubling")
	ErrInvalidRoot                = errors.New("root is not a pitch class")
)

// Shape is the kind of legal sonority a classification settled on.
type Shape uint8

const (
	ShapeUnknown Shape = iota
	ShapeOpenDyad
	ShapeRootPosition
	ShapeFirstInversion
	ShapeSecondInversion
	ShapeSeventh
)

func (s Shape) String() string {
	switch s {
	case ShapeOpenDyad:
		return "root and third"
	case ShapeRootPosition:
		return "root position"
	case ShapeFirstInversion:
		return "first inversion"
	case ShapeSecondInversion:
		return "second inversion"
	case ShapeSeventh:
		return "seventh chord"
	}
	return "unknown"
}

func countOf(fns []interval.Function, f interval.Function) int {
	var n int
	for _, fn := range fns {
		if fn == f {
			n++
		}
	}
	return n
}

// Classify decides whether four voice pitch classes, given bottom-up, form a
// legal chord over root. Ranges are expected to have been checked already.
func Classify(root, bass, tenor, alto, soprano uint8) (Shape, error) {
	if root >= pitch.NumClasses {
		return ShapeUnknown, fmt.Errorf("%w: %d", ErrInvalidRoot, root)
	}
	voices := [4]uint8{bass, tenor, alto, soprano}

	var fns [4]interval.Function
	var present pitch.ClassSet
	for i, v := range voices {
		fns[i] = interval.FunctionOf(root, v)
		present = present.Add(v)
	}

	if countOf(fns[:], interval.Root) == 0 {
		return ShapeUnknown, fmt.Errorf("%w: root %v", ErrNoRootPresent, pitch.Name(root))
	}

	switch n := present.Add(root).Len(); n {
	case 2:
		return classifyDyad(fns)
	case 3:
		return classifyTriad(root, voices, fns)
	case 4:
		return classifySeventh(fns)
	default:
		return ShapeUnknown, fmt.Errorf("%w: %d", ErrInvalidVoiceCount, n)
	}
}

// A two-class texture is only legal as root and third.
func classifyDyad(fns [4]interval.Function) (Shape, error) {
	for _, fn := range fns {
		if fn != interval.Root && fn != interval.Third {
			return ShapeUnknown, fmt.Errorf("%w: two classes without a third", ErrIncompleteHarmonicFunction)
		}
	}
	return ShapeOpenDyad, nil
}

func classifyTriad(root uint8, voices [4]uint8, fns [4]interval.Function) (Shape, error) {
	upper := fns[1:]
	roots := countOf(upper, interval.Root)
	thirds := countOf(upper, interval.Third)
	fifths := countOf(upper, interval.Fifth)

	switch fns[0] {
	case interval.Root:
		if roots == 1 && thirds == 1 && fifths == 1 {
			return ShapeRootPosition, nil
		}
		return ShapeUnknown, fmt.Errorf("%w: root position must double the root", ErrInvalidDoubling)

	case interval.Third:
		diminished := false
		for _, v := range voices[1:] {
			if interval.IsDiminishedFifth(root, v) {
				diminished = true
			}
		}
		if diminished {
			if thirds > 0 {
				return ShapeFirstInversion, nil
			}
			return ShapeUnknown, fmt.Errorf("%w: diminished first inversion must double the third", ErrInvalidDoubling)
		}
		if thirds == 0 && roots > 0 && fifths > 0 {
			return ShapeFirstInversion, nil
		}
		return ShapeUnknown, fmt.Errorf("%w: first inversion must not double the third", ErrInvalidDoubling)

	case interval.Fifth:
		if fifths > 0 && thirds > 0 && roots > 0 {
			return ShapeSecondInversion, nil
		}
		return ShapeUnknown, fmt.Errorf("%w: second inversion must double the fifth", ErrInvalidDoubling)
	}

	return ShapeUnknown, fmt.Errorf("%w: bass is %v", ErrInvalidBassFunction, fns[0])
}

// Each of the four functions needs at least one voice; nothing stops two
// voices sharing a function.
func classifySeventh(fns [4]interval.Function) (Shape, error) {
	for _, f := range []interval.Function{interval.Root, interval.Third, interval.Fifth, interval.Seventh} {
		if countOf(fns[:], f) == 0 {
			return ShapeUnknown, fmt.Errorf("%w: no %v", ErrIncompleteHarmonicFunction, f)
		}
	}
	return ShapeSeventh, nil
}

// InferRoot tries each class present as the root, bass first, and returns the
// first that classifies as legal. When none does, the error for the bass is
// returned.
func InferRoot(bass, tenor, alto, soprano uint8) (uint8, Shape, error) {
	var tried pitch.ClassSet
	var firstErr error
	for _, candidate := range []uint8{bass, tenor, alto, soprano} {
		if tried.Has(candidate) {
			continue
		}
		tried = tried.Add(candidate)
		shape, err := Classify(candidate, bass, tenor, alto, soprano)
		if err == nil {
			return candidate, shape, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return bass, ShapeUnknown, firstErr
}
