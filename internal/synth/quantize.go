package synth

import "math"

// MaxSample is the largest magnitude written to a 16-bit PCM stream.
// -32768 is never produced so the range stays symmetric.
const MaxSample = 32767

// Quantize converts samples to 16-bit PCM as round(v * 32767), rounding
// half away from zero, clamped to [-MaxSample, MaxSample]. NaN becomes 0.
func Quantize(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		q := math.Round(v * MaxSample)
		out[i] = int16(max(-MaxSample, min(MaxSample, q)))
	}
	return out
}
