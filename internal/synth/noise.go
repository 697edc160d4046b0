package synth

import "math/rand/v2"

// DefaultNoiseAmplitude is used when NoiseParams.Amplitude is 0.
const DefaultNoiseAmplitude = 0.3

// NoiseParams configures a burst of white noise.
type NoiseParams struct {
	Duration   float64 // seconds
	SampleRate int     // default DefaultSampleRate
	Amplitude  float64 // 0..1; 0 selects DefaultNoiseAmplitude, so silent noise cannot be requested

	// Rand is the sample source. When nil the process-wide generator is
	// used and the output differs on every call.
	Rand *rand.Rand
}

func (p NoiseParams) withDefaults() NoiseParams {
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Amplitude == 0 {
		p.Amplitude = DefaultNoiseAmplitude
	}
	return p
}

// Noise generates uniform white noise shaped by NoiseEnvelope.
func Noise(p NoiseParams) ([]float64, error) {
	p = p.withDefaults()
	if err := checkCommon(p.Duration, p.SampleRate, p.Amplitude); err != nil {
		return nil, err
	}

	next := rand.Float64
	if p.Rand != nil {
		next = p.Rand.Float64
	}

	out := make([]float64, frameCount(p.Duration, p.SampleRate))
	for i := range out {
		out[i] = p.Amplitude * (next()*2 - 1)
	}
	NoiseEnvelope.Apply(out, p.SampleRate)
	return out, nil
}
