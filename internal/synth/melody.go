package synth

const (
	// Rest is the silence token.
	Rest = "REST"

	// FallbackFrequency is played for note names missing from the scale.
	// Existing tracks depend on it, so unknown names are not an error.
	FallbackFrequency = 440.0

	// MelodyAmplitude is the tone amplitude of every sounding note.
	MelodyAmplitude = 0.4

	// DefaultNoteDuration is used when MelodyParams.NoteDuration is 0.
	DefaultNoteDuration = 0.3
)

// C major, fourth octave, plus the C above.
var scale = map[string]float64{
	"C":  261.63,
	"D":  293.66,
	"E":  329.63,
	"F":  349.23,
	"G":  392.00,
	"A":  440.00,
	"B":  493.88,
	"C5": 523.25,
}

// NoteFrequency looks up a note name in the C major table.
func NoteFrequency(name string) (float64, bool) {
	f, ok := scale[name]
	return f, ok
}

// MelodyParams configures an 8-bit style melody.
type MelodyParams struct {
	Notes        []string
	NoteDuration float64 // seconds per note, default DefaultNoteDuration
	SampleRate   int     // default DefaultSampleRate
}

// Melody renders each note as a tone at MelodyAmplitude and concatenates
// them in order. A Rest renders as exact zeros with no envelope.
func Melody(p MelodyParams) ([]float64, error) {
	if p.NoteDuration == 0 {
		p.NoteDuration = DefaultNoteDuration
	}
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	if err := checkCommon(p.NoteDuration, p.SampleRate, MelodyAmplitude); err != nil {
		return nil, err
	}

	parts := make([][]float64, 0, len(p.Notes))
	for _, note := range p.Notes {
		if note == Rest {
			parts = append(parts, make([]float64, frameCount(p.NoteDuration, p.SampleRate)))
			continue
		}
		freq, ok := NoteFrequency(note)
		if !ok {
			freq = FallbackFrequency
		}
		tone, err := Tone(ToneParams{
			Frequency:  freq,
			Duration:   p.NoteDuration,
			SampleRate: p.SampleRate,
			Amplitude:  MelodyAmplitude,
		})
		if err != nil {
			return nil, err
		}
		parts = append(parts, tone)
	}
	return Concat(parts...), nil
}
