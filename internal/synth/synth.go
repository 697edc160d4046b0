// Package synth generates the placeholder sound effects and jingles used by
// the board game. Every generator returns a float sample sequence in
// [-1, 1]; Quantize turns it into 16-bit PCM for the wavfile package.
package synth

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSampleRate is used when a generator is called with SampleRate 0.
const DefaultSampleRate = 44100

// ErrInvalidParams is wrapped by every parameter validation error.
var ErrInvalidParams = errors.New("invalid generator parameters")

// frameCount returns the number of samples covering duration seconds.
func frameCount(duration float64, sampleRate int) int {
	return int(math.Round(duration * float64(sampleRate)))
}

func checkCommon(duration float64, sampleRate int, amplitude float64) error {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidParams, duration)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParams, sampleRate)
	}
	if amplitude < 0 || amplitude > 1 || math.IsNaN(amplitude) {
		return fmt.Errorf("%w: amplitude must be within [0, 1], got %g", ErrInvalidParams, amplitude)
	}
	return nil
}

func checkFrequency(freq float64) error {
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalidParams, freq)
	}
	return nil
}

// Concat joins sample sequences back to back, without overlap.
func Concat(parts ...[]float64) []float64 {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Duration returns the playing time in seconds of n samples at sampleRate.
func Duration(n, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(n) / float64(sampleRate)
}
