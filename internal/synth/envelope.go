package synth

// Envelope fades a sequence in and out to avoid clicks at its boundaries.
// Attack and Release are in seconds.
type Envelope struct {
	Attack  float64
	Release float64
}

var (
	ToneEnvelope  = Envelope{Attack: 0.01, Release: 0.01}
	ChordEnvelope = Envelope{Attack: 0.01, Release: 0.1}
	NoiseEnvelope = Envelope{Attack: 0.005, Release: 0.05}
)

// Gain returns the multiplier for sample i of a sequence frames long.
//
// The two ramps are measured from their own boundary. When a sequence is
// shorter than Attack+Release both ramps apply and their product is used.
func (e Envelope) Gain(i, frames, sampleRate int) float64 {
	g := 1.0
	attack := float64(sampleRate) * e.Attack
	if float64(i) < attack {
		g *= float64(i) / attack
	}
	release := float64(sampleRate) * e.Release
	if float64(i) > float64(frames)-release {
		g *= float64(frames-i) / release
	}
	return g
}

// Apply scales samples in place.
func (e Envelope) Apply(samples []float64, sampleRate int) {
	for i := range samples {
		samples[i] *= e.Gain(i, len(samples), sampleRate)
	}
}
