// Package sample persists rendered sound waves as WAV audio.
//
// Output is mono 16-bit integer PCM. Samples are divided by MaxAmplitude,
// clipped to [-1, 1] and rounded, so the encoding is lossy: decoded values
// are within half a quantisation step of the scaled input.
package sample

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jsphweid/twelvetet/constants"
	"github.com/jsphweid/twelvetet/util"
)

// wav fmt chunk audio format for integer PCM
const pcmFormat = 1

// StepSize is the raw amplitude one quantisation step represents.
func StepSize() float64 {
	return constants.MaxAmplitude / fullScale()
}

func fullScale() float64 {
	return float64(int(1)<<(constants.BitDepth-1) - 1)
}

// Quantize scales raw sums into signed integers of the WAV bit depth,
// clipping anything beyond constants.MaxAmplitude.
func Quantize(samples []float64) []int {
	full := fullScale()
	res := make([]int, len(samples))
	for i, s := range samples {
		res[i] = int(math.Round(util.Clamp(s/constants.MaxAmplitude, -1, 1) * full))
	}
	return res
}

// WriteWav encodes samples as single channel PCM.
func WriteWav(w io.WriteSeeker, samples []float64, sampleRate uint32) error {
	enc := wav.NewEncoder(w, int(sampleRate), constants.BitDepth, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Data:           Quantize(samples),
		Format:         &audio.Format{SampleRate: int(sampleRate), NumChannels: 1},
		SourceBitDepth: constants.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	return nil
}

func WriteWavFile(path string, samples []float64, sampleRate uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create %v: %w", path, err)
	}
	if err := WriteWav(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %v: %w", path, err)
	}
	slog.Debug("sample: wrote wav", "path", path, "samples", len(samples), "rate", sampleRate)
	return nil
}

// Stream yields successive sample buffers until it returns an empty one.
type Stream interface {
	Generate() []float64
}

// WriteWavStream encodes buffers from s as they are produced, so long
// renders never hold the whole wave in memory.
func WriteWavStream(w io.WriteSeeker, s Stream, sampleRate uint32) error {
	enc := wav.NewEncoder(w, int(sampleRate), constants.BitDepth, 1, pcmFormat)
	format := &audio.Format{SampleRate: int(sampleRate), NumChannels: 1}
	for {
		samples := s.Generate()
		if len(samples) == 0 {
			break
		}
		buf := &audio.IntBuffer{Data: Quantize(samples), Format: format, SourceBitDepth: constants.BitDepth}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	return nil
}
