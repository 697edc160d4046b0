package synth

import (
	"fmt"
	"math"
)

// DefaultChordAmplitude is used when ChordParams.Amplitude is 0.
const DefaultChordAmplitude = 0.3

// ChordParams configures a chord of simultaneous sine tones.
type ChordParams struct {
	Frequencies []float64 // Hz, at least one
	Duration    float64   // seconds
	SampleRate  int       // default DefaultSampleRate
	Amplitude   float64   // 0..1; 0 selects DefaultChordAmplitude, so a silent chord cannot be requested
}

func (p ChordParams) withDefaults() ChordParams {
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Amplitude == 0 {
		p.Amplitude = DefaultChordAmplitude
	}
	return p
}

// Chord sums equal-weight sine tones, divides by the number of tones and
// shapes the result with ChordEnvelope. The long release lets the chord ring.
func Chord(p ChordParams) ([]float64, error) {
	p = p.withDefaults()
	if len(p.Frequencies) == 0 {
		return nil, fmt.Errorf("%w: chord needs at least one frequency", ErrInvalidParams)
	}
	for _, f := range p.Frequencies {
		if err := checkFrequency(f); err != nil {
			return nil, err
		}
	}
	if err := checkCommon(p.Duration, p.SampleRate, p.Amplitude); err != nil {
		return nil, err
	}

	out := make([]float64, frameCount(p.Duration, p.SampleRate))
	rate := float64(p.SampleRate)
	count := float64(len(p.Frequencies))
	for i := range out {
		var v float64
		for _, f := range p.Frequencies {
			v += p.Amplitude * math.Sin(2*math.Pi*f*float64(i)/rate)
		}
		out[i] = v / count
	}
	ChordEnvelope.Apply(out, p.SampleRate)
	return out, nil
}
