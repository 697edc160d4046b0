package synth

import "math"

// DefaultToneAmplitude is used when ToneParams.Amplitude is 0.
const DefaultToneAmplitude = 0.5

// ToneParams configures a single sine tone.
type ToneParams struct {
	Frequency  float64 // Hz
	Duration   float64 // seconds
	SampleRate int     // default DefaultSampleRate
	Amplitude  float64 // 0..1; 0 selects DefaultToneAmplitude, so a silent tone cannot be requested
}

func (p ToneParams) withDefaults() ToneParams {
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Amplitude == 0 {
		p.Amplitude = DefaultToneAmplitude
	}
	return p
}

// Tone generates a sine wave shaped by ToneEnvelope.
func Tone(p ToneParams) ([]float64, error) {
	p = p.withDefaults()
	if err := checkFrequency(p.Frequency); err != nil {
		return nil, err
	}
	if err := checkCommon(p.Duration, p.SampleRate, p.Amplitude); err != nil {
		return nil, err
	}

	out := make([]float64, frameCount(p.Duration, p.SampleRate))
	rate := float64(p.SampleRate)
	for i := range out {
		out[i] = p.Amplitude * math.Sin(2*math.Pi*p.Frequency*float64(i)/rate)
	}
	ToneEnvelope.Apply(out, p.SampleRate)
	return out, nil
}
