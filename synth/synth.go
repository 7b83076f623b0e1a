// Package synth renders chords as additive sine waves.
package synth

import "math"

// Source is anything that can report the frequencies of its voices, highest
// voice first.
type Source interface {
	Frequencies() []float64
}

// SoundWave returns duration*sampleRate samples. Each sample is the plain sum
// of one unit sinusoid per voice, so amplitudes range over roughly
// [-voices, voices]; scaling to a sample format is left to the writer.
//
// The time axis restarts at zero every second.
func SoundWave(src Source, duration, sampleRate uint32) []float64 {
	freqs := src.Frequencies()
	res := make([]float64, 0, int(duration)*int(sampleRate))
	for sec := uint32(0); sec < duration; sec++ {
		for i := uint32(0); i < sampleRate; i++ {
			t := float64(i) / float64(sampleRate)
			res = append(res, sampleAt(freqs, t))
		}
	}
	return res
}

func sampleAt(freqs []float64, t float64) float64 {
	var sample float64
	for _, f := range freqs {
		sample += math.Sin(2 * math.Pi * f * t)
	}
	return sample
}

// Generator produces a sound wave one buffer at a time, for callers that
// stream audio instead of holding all of it.
type Generator struct {
	freqs      []float64
	sampleRate uint32
	bufferSize int
	remaining  uint64
	index      uint32
}

func NewGenerator(src Source, duration, sampleRate uint32, bufferSize int) *Generator {
	return &Generator{
		freqs:      src.Frequencies(),
		sampleRate: sampleRate,
		bufferSize: bufferSize,
		remaining:  uint64(duration) * uint64(sampleRate),
	}
}

// Generate returns the next buffer of samples. The final buffer may be short
// and an empty buffer means the wave is exhausted.
func (g *Generator) Generate() []float64 {
	n := uint64(g.bufferSize)
	if n > g.remaining {
		n = g.remaining
	}
	buffer := make([]float64, n)
	for i := range buffer {
		t := float64(g.index) / float64(g.sampleRate)
		buffer[i] = sampleAt(g.freqs, t)
		g.index++
		if g.index == g.sampleRate {
			g.index = 0
		}
	}
	g.remaining -= n
	return buffer
}
