package pitch

import "math/bits"

// ClassSet is a membership mask over the twelve pitch classes.
type ClassSet uint16

func (s ClassSet) Add(pitchClass uint8) ClassSet {
	return s | 1<<(pitchClass%NumClasses)
}

func (s ClassSet) Has(pitchClass uint8) bool {
	return s&(1<<(pitchClass%NumClasses)) != 0
}

func (s ClassSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Classes returns the members in ascending order.
func (s ClassSet) Classes() []uint8 {
	res := make([]uint8, 0, s.Len())
	for pc := uint8(0); pc < NumClasses; pc++ {
		if s.Has(pc) {
			res = append(res, pc)
		}
	}
	return res
}
